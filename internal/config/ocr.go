package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// OCRConfig points at the OCR and NLP entity services
type OCRConfig struct {
	OCRServiceURL string `json:"ocrServiceUrl"`
	NLPServiceURL string `json:"nlpServiceUrl"`

	// OCRTimeoutMS bounds one image upload to the OCR service
	OCRTimeoutMS int `json:"ocrTimeoutMs"`

	// NLPTimeoutMS bounds one entity extraction call
	NLPTimeoutMS int `json:"nlpTimeoutMs"`
}

// DefaultOCRConfig matches a local OCR/NLP service
func DefaultOCRConfig() *OCRConfig {
	return &OCRConfig{
		OCRServiceURL: "http://localhost:5002",
		NLPServiceURL: "http://localhost:5002",
		OCRTimeoutMS:  30000,
		NLPTimeoutMS:  10000, // 10 second default timeout
	}
}

func loadOCRConfig(v *viper.Viper) *OCRConfig {
	d := DefaultOCRConfig()
	v.SetDefault("OCR_SERVICE_URL", d.OCRServiceURL)
	v.SetDefault("NLP_SERVICE_URL", d.NLPServiceURL)
	v.SetDefault("OCR_TIMEOUT_MS", d.OCRTimeoutMS)
	v.SetDefault("NLP_TIMEOUT_MS", d.NLPTimeoutMS)
	return &OCRConfig{
		OCRServiceURL: strings.TrimRight(v.GetString("OCR_SERVICE_URL"), "/"),
		NLPServiceURL: strings.TrimRight(v.GetString("NLP_SERVICE_URL"), "/"),
		OCRTimeoutMS:  v.GetInt("OCR_TIMEOUT_MS"),
		NLPTimeoutMS:  v.GetInt("NLP_TIMEOUT_MS"),
	}
}

// OCREnabled reports whether images can be sent for OCR
func (c *OCRConfig) OCREnabled() bool {
	return c != nil && c.OCRServiceURL != ""
}

// NLPEnabled reports whether remote entity extraction is configured
func (c *OCRConfig) NLPEnabled() bool {
	return c != nil && c.NLPServiceURL != ""
}

// ProcessEndpoint is the OCR image endpoint
func (c *OCRConfig) ProcessEndpoint() string {
	return c.OCRServiceURL + "/process"
}

// EntitiesEndpoint is the NLP entity endpoint
func (c *OCRConfig) EntitiesEndpoint() string {
	return c.NLPServiceURL + "/extract-entities"
}

// OCRTimeout is OCRTimeoutMS as a duration
func (c *OCRConfig) OCRTimeout() time.Duration {
	return time.Duration(c.OCRTimeoutMS) * time.Millisecond
}

// NLPTimeout is NLPTimeoutMS as a duration
func (c *OCRConfig) NLPTimeout() time.Duration {
	return time.Duration(c.NLPTimeoutMS) * time.Millisecond
}
