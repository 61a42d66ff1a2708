package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"neuroscreen_backend/internal/config"
	"neuroscreen_backend/internal/model"
	"neuroscreen_backend/internal/util"
	"neuroscreen_backend/pkg/logger"
	"neuroscreen_backend/pkg/monitoring"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// InferenceResult is the payload returned by the model-serving
// endpoint for both speech and motion analysis.
type InferenceResult struct {
	Score   float64 `json:"score"`
	LabelEN string  `json:"label_en"`
	LabelAR string  `json:"label_ar"`
}

// AnalysisService forwards recorded samples to the external inference
// endpoint and persists the returned modality scores. Failed calls are
// not retried; the client decides whether to redo the test.
type AnalysisService struct {
	Cfg       config.InferenceConfig
	SpeechCfg config.SpeechConfig
	Storage   *StorageService
	Results   *ResultService
	client    *http.Client
}

func NewAnalysisService(cfg config.InferenceConfig, speechCfg config.SpeechConfig, storage *StorageService, results *ResultService) *AnalysisService {
	return &AnalysisService{
		Cfg:       cfg,
		SpeechCfg: speechCfg,
		Storage:   storage,
		Results:   results,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// AnalyzeSpeech streams a recording to the inference endpoint as
// multipart form data.
func (s *AnalysisService) AnalyzeSpeech(ctx context.Context, filename string, reader io.Reader) (*InferenceResult, error) {
	start := time.Now()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, reader); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Cfg.BaseURL+"/speech/analyze", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	result, err := s.doInference(req, string(model.ModalitySpeech), start)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AnalyzeMotion posts the captured sensor samples as JSON.
func (s *AnalysisService) AnalyzeMotion(ctx context.Context, samples []model.MotionSample) (*InferenceResult, error) {
	start := time.Now()

	payload, err := json.Marshal(map[string]interface{}{"samples": samples})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Cfg.BaseURL+"/motion/analyze", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return s.doInference(req, string(model.ModalityMotion), start)
}

func (s *AnalysisService) doInference(req *http.Request, modality string, start time.Time) (*InferenceResult, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		monitoring.ObserveInference(modality, "error", time.Since(start).Seconds())
		return nil, fmt.Errorf("%w: %v", util.ErrInferenceFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		monitoring.ObserveInference(modality, fmt.Sprintf("%d", resp.StatusCode), time.Since(start).Seconds())
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", util.ErrInferenceFailed, resp.StatusCode, string(respBody))
	}

	var result InferenceResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		monitoring.ObserveInference(modality, "decode_error", time.Since(start).Seconds())
		return nil, fmt.Errorf("%w: %v", util.ErrInferenceFailed, err)
	}

	monitoring.ObserveInference(modality, "200", time.Since(start).Seconds())
	return &result, nil
}

// validSpeechDuration checks the probed clip length. ffprobe reports 0
// for streams it cannot time, so a non-positive duration means the
// recording is empty or unreadable, not merely short.
func validSpeechDuration(duration float64, maxSeconds int) error {
	if duration <= 0 {
		return fmt.Errorf("empty or unreadable recording")
	}
	if duration > float64(maxSeconds) {
		return fmt.Errorf("recording too long: %.1fs exceeds %ds limit", duration, maxSeconds)
	}
	return nil
}

// ProcessSpeech runs the full speech pipeline: validate the upload,
// archive it to storage, probe it with ffprobe, send it for inference
// and record the returned score.
func (s *AnalysisService) ProcessSpeech(ctx context.Context, userID uint, header *multipart.FileHeader) (*model.ModalityResult, error) {
	if !util.HasAllowedExtension(header.Filename, util.AllowedAudioExtensions) {
		return nil, fmt.Errorf("unsupported audio format: %s", filepath.Ext(header.Filename))
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	// Spool to a temp file so the recording can be probed and re-read.
	tmp, err := os.CreateTemp("", "neuroscreen-speech-*"+filepath.Ext(header.Filename))
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		return nil, err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	if _, err := util.ValidateMimeType(tmp, []string{util.MimeAudio, util.MimeVideo, util.MimeOctetStream}); err != nil {
		return nil, err
	}

	info, err := util.ProbeAudio(tmp.Name())
	if err != nil {
		return nil, err
	}
	if err := validSpeechDuration(info.Duration, s.SpeechCfg.MaxSeconds); err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("speech/%d/%s_%s", userID, model.GenerateUUID(), filepath.Base(header.Filename))
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	storedURL, err := s.Storage.Upload(ctx, objectName, tmp, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	logger.Log.Info("speech recording archived",
		zap.Uint("userId", userID),
		zap.String("object", objectName),
		zap.String("url", storedURL),
		zap.Float64("duration", info.Duration))

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	inference, err := s.AnalyzeSpeech(ctx, header.Filename, tmp)
	if err != nil {
		return nil, err
	}

	return s.Results.SaveModality(userID, model.ModalitySpeech, inference.Score, inference.LabelEN, inference.LabelAR, objectName)
}

// ProcessMotion validates the sample batch, sends it for inference and
// records the returned score.
func (s *AnalysisService) ProcessMotion(ctx context.Context, userID uint, samples []model.MotionSample) (*model.ModalityResult, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("empty motion sample batch")
	}

	inference, err := s.AnalyzeMotion(ctx, samples)
	if err != nil {
		return nil, err
	}

	return s.Results.SaveModality(userID, model.ModalityMotion, inference.Score, inference.LabelEN, inference.LabelAR, "")
}
