// Package ocr recognizes text in scanned PDFs through the Google Cloud
// Vision API, which accepts PDF bytes directly and so removes the need
// for a local rasterizer.
package ocr

import (
	"context"
	"errors"
	"strings"
	"time"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"

	"eduquest/internal/domain"
	"eduquest/internal/logger"

	"go.uber.org/zap"
)

const (
	requestTimeout = 60 * time.Second
	// The synchronous file-annotation API caps the page selection at five
	// pages per request.
	maxSyncPages = 5
)

// VisionOCR implements domain.OCRService with DOCUMENT_TEXT_DETECTION.
type VisionOCR struct {
	client *vision.ImageAnnotatorClient
}

// NewVisionOCR builds the client. credentialsFile may be empty, in which
// case the ambient application-default credentials are used.
func NewVisionOCR(ctx context.Context, credentialsFile string) (*VisionOCR, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &VisionOCR{client: client}, nil
}

// RecognizePDF runs document text detection over the first pages of a
// PDF and joins the per-page text with newlines.
func (s *VisionOCR) RecognizePDF(ctx context.Context, content []byte, language string) (string, error) {
	if len(content) == 0 {
		return "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	pages := make([]int32, 0, maxSyncPages)
	for i := int32(1); i <= maxSyncPages; i++ {
		pages = append(pages, i)
	}

	req := &visionpb.BatchAnnotateFilesRequest{
		Requests: []*visionpb.AnnotateFileRequest{{
			InputConfig: &visionpb.InputConfig{
				Content:  content,
				MimeType: "application/pdf",
			},
			Features: []*visionpb.Feature{{
				Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION,
			}},
			ImageContext: &visionpb.ImageContext{
				LanguageHints: languageHints(language),
			},
			Pages: pages,
		}},
	}

	resp, err := s.client.BatchAnnotateFiles(ctx, req)
	if err != nil {
		return "", domain.NewOCRError(err)
	}
	if len(resp.Responses) == 0 {
		return "", domain.NewOCRError(errors.New("respuesta vacía del servicio de visión"))
	}

	var parts []string
	for _, pageResp := range resp.Responses[0].Responses {
		if pageResp.Error != nil {
			logger.Get().Warn("Vision page annotation failed",
				zap.String("error", pageResp.Error.GetMessage()),
			)
			continue
		}
		if fta := pageResp.GetFullTextAnnotation(); fta != nil {
			parts = append(parts, fta.GetText())
		}
	}
	return strings.Join(parts, "\n"), nil
}

// Close releases the underlying gRPC connection.
func (s *VisionOCR) Close() error {
	return s.client.Close()
}

// languageHints converts a tesseract-style "spa+eng" list into the
// ISO codes Vision expects. Unknown codes pass through untouched.
func languageHints(language string) []string {
	if language == "" {
		return nil
	}
	known := map[string]string{
		"spa": "es",
		"eng": "en",
		"por": "pt",
		"fra": "fr",
		"deu": "de",
		"ita": "it",
	}
	var hints []string
	for _, code := range strings.Split(language, "+") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if iso, ok := known[strings.ToLower(code)]; ok {
			hints = append(hints, iso)
		} else {
			hints = append(hints, code)
		}
	}
	return hints
}

var _ domain.OCRService = (*VisionOCR)(nil)
