package local

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"adforge/contexts/ad-production/generation-service/domain/entities"
)

// Store downloads finished assets from the provider's ephemeral URL into a
// local upload directory and returns the served path. Keyframes land under
// keyframes/, segment videos under videos/.
type Store struct {
	UploadDir string
	PublicDir string
	HTTP      *http.Client
}

func NewStore(uploadDir string) *Store {
	return &Store{
		UploadDir: uploadDir,
		PublicDir: "/uploads/adforge",
		HTTP:      &http.Client{Timeout: 2 * time.Minute},
	}
}

func (s *Store) Persist(ctx context.Context, kind entities.JobKind, assetID string, sourceURL string) (string, error) {
	subfolder := "keyframes"
	if kind == entities.JobKindVideo {
		subfolder = "videos"
	}
	dir := filepath.Join(s.UploadDir, "adforge", subfolder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("local store: create %s: %w", dir, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", fmt.Errorf("local store: build download request: %w", err)
	}
	resp, err := s.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("local store: download %s: %w", sourceURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("local store: download %s: status %d", sourceURL, resp.StatusCode)
	}

	filename := fmt.Sprintf("%s-%s.%s", assetID, uuid.NewString()[:8], extensionFor(kind, sourceURL))
	path := filepath.Join(dir, filename)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("local store: create %s: %w", path, err)
	}
	defer file.Close()
	if _, err := io.Copy(file, resp.Body); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("local store: write %s: %w", path, err)
	}
	return s.PublicDir + "/" + subfolder + "/" + filename, nil
}

func extensionFor(kind entities.JobKind, sourceURL string) string {
	switch {
	case strings.Contains(sourceURL, ".mp4"):
		return "mp4"
	case strings.Contains(sourceURL, ".webm"):
		return "webm"
	case kind == entities.JobKindVideo:
		return "mp4"
	default:
		return "jpg"
	}
}

func (s *Store) httpClient() *http.Client {
	if s.HTTP != nil {
		return s.HTTP
	}
	return http.DefaultClient
}
