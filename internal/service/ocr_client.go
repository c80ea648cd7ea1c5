package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"certpoints/internal/config"
	"certpoints/internal/model"
)

var ErrOCRDisabled = errors.New("ocr service not configured")

// maxServiceResponse caps how much of an OCR/NLP reply is read
const maxServiceResponse = 4 << 20

// OCRClient talks to the OCR and NLP entity services
type OCRClient struct {
	cfg        *config.OCRConfig
	httpClient *http.Client
}

// NewOCRClient creates a client for the configured services
func NewOCRClient(cfg *config.OCRConfig) *OCRClient {
	return &OCRClient{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

// Process uploads an image as multipart field "image" and decodes the reply.
// Fields the service leaves out stay empty.
func (c *OCRClient) Process(ctx context.Context, fileName string, image io.Reader) (model.ExtractedRecord, error) {
	if !c.cfg.OCREnabled() {
		return model.ExtractedRecord{}, ErrOCRDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, c.cfg.OCRTimeout())
	defer cancel()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("image", filepath.Base(fileName))
	if err != nil {
		return model.ExtractedRecord{}, errors.Wrap(err, "building ocr request")
	}
	if _, err := io.Copy(part, image); err != nil {
		return model.ExtractedRecord{}, errors.Wrap(err, "reading upload")
	}
	if err := form.Close(); err != nil {
		return model.ExtractedRecord{}, errors.Wrap(err, "building ocr request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.ProcessEndpoint(), &body)
	if err != nil {
		return model.ExtractedRecord{}, errors.Wrap(err, "building ocr request")
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	data, err := c.do(req)
	if err != nil {
		return model.ExtractedRecord{}, errors.Wrap(err, "ocr service")
	}
	return decodeRecord(data), nil
}

// Entities sends raw text to the NLP service for entity extraction
func (c *OCRClient) Entities(ctx context.Context, rawText string) (model.ExtractedRecord, error) {
	if !c.cfg.NLPEnabled() {
		return model.ExtractedRecord{}, ErrOCRDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, c.cfg.NLPTimeout())
	defer cancel()

	payload, err := json.Marshal(map[string]string{"text": rawText})
	if err != nil {
		return model.ExtractedRecord{}, errors.Wrap(err, "encoding nlp request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.EntitiesEndpoint(), bytes.NewReader(payload))
	if err != nil {
		return model.ExtractedRecord{}, errors.Wrap(err, "building nlp request")
	}
	req.Header.Set("Content-Type", "application/json")

	data, err := c.do(req)
	if err != nil {
		return model.ExtractedRecord{}, errors.Wrap(err, "nlp service")
	}
	return decodeRecord(data), nil
}

func (c *OCRClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxServiceResponse))
	if err != nil {
		return nil, errors.Wrap(err, "reading response")
	}
	if resp.StatusCode >= 400 {
		msg := gjson.GetBytes(data, "error").String()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, errors.Errorf("status %d: %s", resp.StatusCode, msg)
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.New("response is not valid JSON")
	}
	return data, nil
}

// decodeRecord reads a service reply leniently: numbers may arrive as
// strings and the prize as a string or an object with a "type".
func decodeRecord(data []byte) model.ExtractedRecord {
	res := gjson.ParseBytes(data)
	rec := model.ExtractedRecord{
		Names:           stringList(res.Get("names")),
		EventName:       strings.TrimSpace(res.Get("eventName").String()),
		Organizations:   stringList(res.Get("organizations")),
		Dates:           stringList(res.Get("dates")),
		CertificateType: strings.TrimSpace(res.Get("certificateType").String()),
		EventDuration:   strings.TrimSpace(res.Get("eventDuration").String()),
		Location:        strings.TrimSpace(res.Get("location").String()),
		Positions:       stringList(res.Get("positions")),
		ActivityHead:    strings.TrimSpace(res.Get("activityHead").String()),
		ActivityName:    strings.TrimSpace(res.Get("activityName").String()),
		RawText:         res.Get("rawText").String(),
		ActivityNumber:  strings.TrimSpace(res.Get("activityNumber").String()),
		PointsAwarded:   int(res.Get("pointsAwarded").Int()),
	}

	if lvl := model.Level(strings.ToUpper(strings.TrimSpace(res.Get("activityLevel").String()))); lvl.Valid() {
		rec.ActivityLevel = lvl
	}

	switch prize := res.Get("prize"); {
	case prize.IsObject():
		if t := prize.Get("type").String(); t != "" {
			rec.Prize = t + " prize"
		}
	case prize.Type == gjson.String:
		rec.Prize = strings.TrimSpace(prize.String())
	}
	return rec
}

func stringList(v gjson.Result) []string {
	if !v.IsArray() {
		return nil
	}
	out := []string{}
	for _, item := range v.Array() {
		if s := strings.TrimSpace(item.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}
