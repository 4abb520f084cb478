package service

// ChunkTextForTest exposes chunkText for tests.
func ChunkTextForTest(text string, limit int) []string {
	return chunkText(text, limit)
}

// CosineSimilarityForTest exposes cosineSimilarity for tests.
func CosineSimilarityForTest(a, b []float32) float64 {
	return cosineSimilarity(a, b)
}

// ExtractDocumentForTest runs the upload text extractor.
func ExtractDocumentForTest(content, fileName string) string {
	return newDocumentExtractor().Extract(content, fileName)
}

// SummarySentencesForTest exposes summarySentences for tests.
func SummarySentencesForTest(contents string) []string {
	return summarySentences(contents)
}
