package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"certpoints/internal/catalog"
	"certpoints/internal/config"
	"certpoints/internal/model"
	"certpoints/internal/service"
)

func readInput(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", errors.Wrapf(err, "opening %s", path)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	return string(data), errors.Wrap(err, "reading input")
}

func entityService() *service.EntityService {
	var remote service.EntityExtractor
	if nlpURL != "" {
		remote = service.NewOCRClient(&config.OCRConfig{
			NLPServiceURL: nlpURL,
			NLPTimeoutMS:  10000,
		})
	}
	return service.NewEntityService(remote, model.StandardDefaults, nil)
}

// enrich builds the extracted record for a text file, applying the level hint
func enrich(ctx context.Context, path string, level model.Level) (model.ExtractedRecord, error) {
	raw, err := readInput(path)
	if err != nil {
		return model.ExtractedRecord{}, err
	}
	return entityService().Enrich(ctx, model.ExtractedRecord{RawText: raw, ActivityLevel: level}), nil
}

func loadCatalog(path string) (*catalog.Static, error) {
	if path == "" {
		return catalog.NewStatic(catalog.DefaultVersion, catalog.DefaultRules()), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading catalog %s", path)
	}
	var rules []model.ActivityRule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, errors.Wrapf(err, "decoding catalog %s", path)
	}
	for i := range rules {
		rules[i].Keywords = catalog.NormalizeKeywords(rules[i].Keywords)
	}
	return catalog.NewStatic(path, rules), nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
