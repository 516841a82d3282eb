package entity

// ASRTranscribeResponse is the wire format of the speech-recognition service.
type ASRTranscribeResponse struct {
	Text                string  `json:"text"`
	Language            string  `json:"language"`
	LanguageProbability float64 `json:"language_probability"`
}
