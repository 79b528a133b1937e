package dto

// FileUpload carries one uploaded document through the service layer.
type FileUpload struct {
	Filename string
	Content  []byte
}

// ExtractResponse is the result of extracting a single document
// @Description Extraction result for one uploaded file
type ExtractResponse struct {
	Filename  string         `json:"filename"`
	Kind      string         `json:"kind"`
	SizeBytes int            `json:"size_bytes"`
	Meta      map[string]any `json:"meta"`
	Text      string         `json:"text"`
	WordCount int            `json:"word_count"`
}

// BatchItem summarizes one file of a batch extraction (no text body)
type BatchItem struct {
	Filename  string `json:"filename"`
	Kind      string `json:"kind"`
	SizeBytes int    `json:"size_bytes"`
	WordCount int    `json:"word_count"`
}

// BatchExtractResponse is the result of a batch extraction
type BatchExtractResponse struct {
	Items      []BatchItem `json:"items"`
	TotalFiles int         `json:"total_files"`
	TotalWords int         `json:"total_words"`
}

// GenerateQuestionsRequest is the parsed form of the LLM generation
// endpoint. Exactly one of Context or File must be set.
type GenerateQuestionsRequest struct {
	Context            string
	Type               string
	QuestionCount      int
	OptionsPerQuestion int
	Model              string
	ForceOCR           bool
	OCRLang            string
	File               *FileUpload
}
