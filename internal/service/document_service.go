package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"eduquest/internal/cache"
	"eduquest/internal/config"
	"eduquest/internal/domain"
	"eduquest/internal/dto"
	"eduquest/internal/logger"
	"eduquest/internal/textproc"

	"go.uber.org/zap"
)

// batchConcurrency bounds how many files of one batch are extracted at
// the same time.
const batchConcurrency = 4

// DocumentService defines document upload and extraction operations
type DocumentService interface {
	// ExtractUpload extracts a single document into cleaned text plus
	// metadata.
	ExtractUpload(ctx context.Context, upload dto.FileUpload) (*dto.ExtractResponse, error)

	// ExtractBatch extracts multiple documents concurrently, preserving
	// input order. Any failing file aborts the batch.
	ExtractBatch(ctx context.Context, uploads []dto.FileUpload) (*dto.BatchExtractResponse, error)

	// CleanText returns only the normalized text of an upload.
	CleanText(ctx context.Context, upload dto.FileUpload) (string, error)

	// CleanTextWithOCR is CleanText plus the OCR fallback: a PDF whose
	// extracted text is too short (or forceOCR) is re-read through the
	// OCR collaborator when one is configured.
	CleanTextWithOCR(ctx context.Context, upload dto.FileUpload, forceOCR bool, ocrLang string) (string, error)
}

type documentService struct {
	extractor domain.TextExtractor
	ocr       domain.OCRService
	cache     domain.Cache
	cfg       *config.Config
}

// NewDocumentService creates a new DocumentService. ocr and extraction
// cache may be nil, which disables the OCR fallback and caching.
func NewDocumentService(extractor domain.TextExtractor, ocr domain.OCRService, extractionCache domain.Cache, cfg *config.Config) DocumentService {
	return &documentService{
		extractor: extractor,
		ocr:       ocr,
		cache:     extractionCache,
		cfg:       cfg,
	}
}

// cachedExtraction is the JSON shape stored in the extraction cache.
type cachedExtraction struct {
	Kind       string `json:"kind"`
	Text       string `json:"text"`
	Pages      int    `json:"pages,omitempty"`
	Paragraphs int    `json:"paragraphs,omitempty"`
}

func (s *documentService) ExtractUpload(ctx context.Context, upload dto.FileUpload) (*dto.ExtractResponse, error) {
	if !allowedUpload(upload.Filename) {
		return nil, domain.NewInvalidInputError("Solo se aceptan .pdf y .docx")
	}
	if err := s.checkSize(upload, fmt.Sprintf("Archivo excede %d MB", s.cfg.Upload.MaxFileMB)); err != nil {
		return nil, err
	}

	extraction, err := s.extractCleaned(ctx, upload)
	if err != nil {
		return nil, err
	}

	meta := map[string]any{}
	switch extraction.Kind {
	case "pdf":
		meta["pages"] = extraction.Pages
	case "docx":
		meta["paragraphs"] = extraction.Paragraphs
	}

	return &dto.ExtractResponse{
		Filename:  upload.Filename,
		Kind:      extraction.Kind,
		SizeBytes: len(upload.Content),
		Meta:      meta,
		Text:      extraction.Text,
		WordCount: wordCount(extraction.Text),
	}, nil
}

func (s *documentService) ExtractBatch(ctx context.Context, uploads []dto.FileUpload) (*dto.BatchExtractResponse, error) {
	items := make([]dto.BatchItem, len(uploads))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, upload := range uploads {
		g.Go(func() error {
			if !allowedUpload(upload.Filename) {
				return domain.NewInvalidInputError(fmt.Sprintf("Archivo no permitido: %s", upload.Filename))
			}
			if err := s.checkSize(upload, fmt.Sprintf("%s excede %d MB", upload.Filename, s.cfg.Upload.MaxFileMB)); err != nil {
				return err
			}
			extraction, err := s.extractCleaned(ctx, upload)
			if err != nil {
				return err
			}
			items[i] = dto.BatchItem{
				Filename:  upload.Filename,
				Kind:      extraction.Kind,
				SizeBytes: len(upload.Content),
				WordCount: wordCount(extraction.Text),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totalWords := 0
	for _, item := range items {
		totalWords += item.WordCount
	}
	return &dto.BatchExtractResponse{
		Items:      items,
		TotalFiles: len(items),
		TotalWords: totalWords,
	}, nil
}

func (s *documentService) CleanText(ctx context.Context, upload dto.FileUpload) (string, error) {
	if !allowedUpload(upload.Filename) {
		return "", domain.NewInvalidInputError("Solo se aceptan .pdf y .docx")
	}
	if err := s.checkSize(upload, fmt.Sprintf("El archivo excede %d MB", s.cfg.Upload.MaxFileMB)); err != nil {
		return "", err
	}
	extraction, err := s.extractCleaned(ctx, upload)
	if err != nil {
		return "", err
	}
	return extraction.Text, nil
}

func (s *documentService) CleanTextWithOCR(ctx context.Context, upload dto.FileUpload, forceOCR bool, ocrLang string) (string, error) {
	text, err := s.CleanText(ctx, upload)
	if err != nil {
		return "", err
	}

	isPDF := strings.HasSuffix(strings.ToLower(upload.Filename), ".pdf")
	needsOCR := isPDF && (forceOCR || utf8.RuneCountInString(text) < s.cfg.Upload.OCRTriggerChars)
	if !needsOCR {
		return text, nil
	}
	if s.ocr == nil {
		logger.Get().Warn("OCR requested but no OCR service is configured; keeping extracted text",
			zap.String("filename", upload.Filename),
			zap.Bool("force_ocr", forceOCR),
		)
		return text, nil
	}

	if ocrLang == "" {
		ocrLang = s.cfg.OCR.Language
	}
	recognized, err := s.ocr.RecognizePDF(ctx, upload.Content, ocrLang)
	if err != nil {
		return "", err
	}
	return textproc.Normalize(recognized), nil
}

// extractCleaned runs the extractor and normalizer, consulting the
// extraction cache first. Cache failures are logged, never surfaced.
func (s *documentService) extractCleaned(ctx context.Context, upload dto.FileUpload) (*cachedExtraction, error) {
	var key string
	if s.cache != nil {
		sum := sha256.Sum256(upload.Content)
		key = cache.ExtractionKey(hex.EncodeToString(sum[:]))
		if raw, err := s.cache.Get(ctx, key); err == nil {
			var cached cachedExtraction
			if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
				logger.Get().Debug("Extraction cache hit", zap.String("filename", upload.Filename))
				return &cached, nil
			}
		} else if err != domain.ErrCacheMiss {
			logger.Get().Warn("Extraction cache read failed", zap.Error(err))
		}
	}

	doc, err := s.extractor.Extract(upload.Filename, upload.Content)
	if err != nil {
		return nil, err
	}
	result := &cachedExtraction{
		Kind:       doc.Kind,
		Text:       textproc.Normalize(doc.RawText),
		Pages:      doc.Pages,
		Paragraphs: doc.Paragraphs,
	}

	if s.cache != nil {
		if raw, jsonErr := json.Marshal(result); jsonErr == nil {
			if err := s.cache.Set(ctx, key, string(raw), s.cfg.Redis.ExtractionTTL); err != nil {
				logger.Get().Warn("Extraction cache write failed", zap.Error(err))
			}
		}
	}
	return result, nil
}

func (s *documentService) checkSize(upload dto.FileUpload, message string) error {
	if len(upload.Content) > s.cfg.MaxFileBytes() {
		return domain.NewPayloadTooLargeError(message)
	}
	return nil
}

func allowedUpload(filename string) bool {
	fn := strings.ToLower(filename)
	return strings.HasSuffix(fn, ".pdf") || strings.HasSuffix(fn, ".docx")
}

func wordCount(text string) int {
	if text == "" {
		return 0
	}
	return len(strings.Fields(text))
}
