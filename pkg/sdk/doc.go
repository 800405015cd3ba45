// Package symptomlog identifies symptoms described in free-text caregiver
// logs. It embeds the same pipeline the symptomlog API server runs:
// sentence segmentation, spelling correction, lemmatization, corpus
// filtering, mean word vectors and cosine matching against reference
// symptom vectors.
//
// # From an asset directory
//
//	client, _ := symptomlog.New(symptomlog.WithAssetDir("./assets"))
//	res, _ := client.Classify(ctx, "She has freckles and seems tired.")
//	if res.Detected {
//	    fmt.Println(res.Primary)
//	}
//
// # From in-memory tables
//
//	client, _ := symptomlog.New(
//	    symptomlog.WithCorpus([]string{"freckle", "tired"}),
//	    symptomlog.WithWordVectors(words),
//	    symptomlog.WithSymptomVectors(symptoms),
//	    symptomlog.WithThreshold(0.6),
//	)
//
// A remote or custom word-vector source plugs in through WithWordVectorLookup.
package symptomlog
