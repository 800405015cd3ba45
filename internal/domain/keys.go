package domain

// KeyPrefix namespaces every key symptomlog writes to the cache store.
const KeyPrefix = "symptomlog:"
