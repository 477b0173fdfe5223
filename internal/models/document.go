package models

// DocumentMetadata describes an uploaded document after text extraction.
type DocumentMetadata struct {
	Filename  string `json:"filename"`
	FileType  string `json:"file_type"`
	Pages     int    `json:"pages,omitempty"`
	WordCount int    `json:"word_count"`
	Language  string `json:"language,omitempty"`
}

// UploadResponse is returned after a document upload.
type UploadResponse struct {
	ConversationID string           `json:"conversation_id"`
	Message        string           `json:"message"`
	Metadata       DocumentMetadata `json:"metadata"`
}
