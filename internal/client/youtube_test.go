package client

import (
	"context"
	"testing"
	"time"
)

func TestNewYouTubeDataClient(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		wantErr bool
	}{
		{
			name:    "valid API key",
			apiKey:  "test-api-key-12345",
			wantErr: false,
		},
		{
			name:    "empty API key",
			apiKey:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewYouTubeDataClient(tt.apiKey)

			if (err != nil) != tt.wantErr {
				t.Errorf("NewYouTubeDataClient() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if client == nil {
					t.Error("Expected non-nil client when no error")
					return
				}

				if client.apiKey != tt.apiKey {
					t.Errorf("Expected apiKey %s, got %s", tt.apiKey, client.apiKey)
				}

				if client.httpTimeout != defaultHTTPTimeout {
					t.Errorf("Expected default HTTP timeout %v, got %v", defaultHTTPTimeout, client.httpTimeout)
				}
			}
		})
	}
}

func TestNewYouTubeDataClientWithHTTPTimeout(t *testing.T) {
	client, err := NewYouTubeDataClient("test-key", WithHTTPTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	if client.httpTimeout != 5*time.Second {
		t.Errorf("Expected HTTP timeout 5s, got %v", client.httpTimeout)
	}
}

func TestYouTubeDataClient_Disconnect(t *testing.T) {
	client, err := NewYouTubeDataClient("test-key")
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	err = client.Disconnect(context.Background())
	if err != nil {
		t.Errorf("Disconnect() error = %v, want nil", err)
	}

	if client.service != nil {
		t.Error("Expected service to be nil after disconnect")
	}
}

func TestYouTubeDataClient_VideoByID_NotConnected(t *testing.T) {
	client, err := NewYouTubeDataClient("test-key")
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	// Don't call Connect() - service should be nil
	_, err = client.VideoByID(context.Background(), "9bZkp7q19f0")

	if err == nil {
		t.Error("Expected error when client not connected, got nil")
	}

	if err != nil && err.Error() != "YouTube client not connected" {
		t.Errorf("Expected 'YouTube client not connected' error, got: %v", err)
	}
}

func TestYouTubeDataClient_RelatedByID_NotConnected(t *testing.T) {
	client, err := NewYouTubeDataClient("test-key")
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	_, err = client.RelatedByID(context.Background(), "9bZkp7q19f0")

	if err == nil {
		t.Error("Expected error when client not connected, got nil")
	}

	if err != nil && err.Error() != "YouTube client not connected" {
		t.Errorf("Expected 'YouTube client not connected' error, got: %v", err)
	}
}
