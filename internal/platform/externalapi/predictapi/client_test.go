package predictapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smartbin/internal/feature/classification/domain/entity"
)

func testUpload() entity.Upload {
	return entity.Upload{Filename: "bottle.png", ContentType: "image/png", Data: []byte("fake-png")}
}

func TestPredictClient_Classify_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/predict" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("expected multipart field file: %v", err)
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		if string(data) != "fake-png" {
			t.Errorf("unexpected file content %q", data)
		}
		if header.Filename != "bottle.png" {
			t.Errorf("expected filename bottle.png, got %s", header.Filename)
		}
		if ct := header.Header.Get("Content-Type"); ct != "image/png" {
			t.Errorf("expected part content type image/png, got %s", ct)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"predictions": [
				{"id": 0, "name": "Plastic", "type": "Non-Biodegradable", "probability": 85.5, "color": "#e74c3c", "icon": "fas fa-wine-bottle"},
				{"id": 3, "name": "Paper", "type": "Biodegradable", "probability": 14.5, "color": "#f1c40f", "icon": "fas fa-newspaper"}
			],
			"top_prediction": {"id": 0, "name": "Plastic", "type": "Non-Biodegradable", "probability": 85.5, "color": "#e74c3c", "icon": "fas fa-wine-bottle"},
			"disposal": {
				"category": "Recyclable Plastic",
				"instructions": ["Clean and rinse the plastic item"],
				"tips": ["Flatten bottles to save space"],
				"recycling_info": "Most plastics are recyclable but check local guidelines",
				"decomposition": "450+ years to decompose",
				"examples": "Water bottles"
			},
			"model_info": {"total_categories": 10, "is_demo": true}
		}`))
	}))
	defer server.Close()

	client := NewPredictClient(Config{BaseURL: server.URL}, server.Client())

	result, err := client.Classify(context.Background(), testUpload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Predictions) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(result.Predictions))
	}
	if result.Predictions[1].Type != entity.Biodegradable {
		t.Errorf("expected Biodegradable, got %s", result.Predictions[1].Type)
	}
	if result.TopPrediction.Name != "Plastic" || result.TopPrediction.Probability != 85.5 {
		t.Errorf("unexpected top prediction %+v", result.TopPrediction)
	}
	if result.Disposal == nil || result.Disposal.RecyclingInfo != "Most plastics are recyclable but check local guidelines" {
		t.Errorf("unexpected disposal %+v", result.Disposal)
	}
	if result.Disposal.Decomposition != "450+ years to decompose" {
		t.Errorf("unexpected decomposition %q", result.Disposal.Decomposition)
	}
}

func TestPredictClient_Classify_MissingOptionalFields(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"predictions": []}`))
	}))
	defer server.Close()

	client := NewPredictClient(Config{BaseURL: server.URL}, server.Client())

	result, err := client.Classify(context.Background(), testUpload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Predictions) != 0 {
		t.Errorf("expected no predictions, got %d", len(result.Predictions))
	}
	if result.TopPrediction.Name != "" {
		t.Errorf("expected absent top prediction, got %q", result.TopPrediction.Name)
	}
	if result.Disposal != nil {
		t.Errorf("expected nil disposal, got %+v", result.Disposal)
	}
}

func TestPredictClient_Classify_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		body       string
		wantMsg    string
	}{
		{"json error body", http.StatusBadRequest, `{"error": "No file uploaded"}`, "predict http 400: No file uploaded"},
		{"server error", http.StatusInternalServerError, `{"error": "Prediction failed: boom"}`, "Prediction failed: boom"},
		{"html body", http.StatusBadGateway, `<html>bad gateway</html>`, "predict http 502: <html>bad gateway</html>"},
		{"empty body", http.StatusServiceUnavailable, ``, "empty response body"},
		{"not modified", http.StatusNotModified, ``, "predict http 304: empty response body"},
		{"multiple choices with result body", http.StatusMultipleChoices, `{"success": true, "predictions": [{"name": "Glass", "probability": 90}]}`, "predict http 300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewPredictClient(Config{BaseURL: server.URL}, server.Client())

			_, err := client.Classify(context.Background(), testUpload())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error containing %q, got %v", tt.wantMsg, err)
			}
		})
	}
}

func TestPredictClient_Classify_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{invalid json`))
	}))
	defer server.Close()

	client := NewPredictClient(Config{BaseURL: server.URL}, server.Client())

	_, err := client.Classify(context.Background(), testUpload())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestPredictClient_Classify_ContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewPredictClient(Config{BaseURL: server.URL}, server.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := client.Classify(ctx, testUpload()); err == nil {
		t.Fatal("expected error due to context cancellation, got nil")
	}
}

func TestErrorMessage_Truncates(t *testing.T) {
	t.Parallel()

	got := errorMessage([]byte(strings.Repeat("x", maxErrorBody+50)))
	if len(got) != maxErrorBody+3 {
		t.Errorf("expected truncated message, got length %d", len(got))
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		baseURL     string
		timeout     string
		wantBaseURL string
		wantTimeout time.Duration
	}{
		{"defaults", "", "", defaultBaseURL, defaultTimeout},
		{"custom values", "http://backend:8080/", "5s", "http://backend:8080", 5 * time.Second},
		{"invalid timeout", "", "soon", defaultBaseURL, defaultTimeout},
		{"negative timeout", "", "-1s", defaultBaseURL, defaultTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PREDICT_API_BASE_URL", tt.baseURL)
			t.Setenv("PREDICT_API_TIMEOUT", tt.timeout)

			cfg := LoadConfig()
			if cfg.BaseURL != tt.wantBaseURL {
				t.Errorf("expected base URL %q, got %q", tt.wantBaseURL, cfg.BaseURL)
			}
			if cfg.Timeout != tt.wantTimeout {
				t.Errorf("expected timeout %v, got %v", tt.wantTimeout, cfg.Timeout)
			}
		})
	}
}
