package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"library-admin/config"
	"library-admin/internal/errs"
	cb "library-admin/pkg/circuit_breaker"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Service is the typed client for the remote catalog API. It is stateless:
// every method is a single request/response against the configured base URL.
type Service struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
	cb      cb.CircuitBreaker
}

const (
	cbRecordLength     = 10
	cbTimeout          = 5 * time.Second
	cbPercentile       = 0.5
	cbRecoveryRequests = 5
)

func NewService(log *zap.Logger, cfg config.CatalogAPI) *Service {
	return &Service{
		log:     log.Named("catalog"),
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		cb:      cb.New(cbRecordLength, cbTimeout, cbPercentile, cbRecoveryRequests),
	}
}

func (s *Service) CB() cb.CircuitBreaker {
	return s.cb
}

func (s *Service) get(ctx context.Context, path string, out interface{}) error {
	return s.cb.Call(func() error {
		return s.do(ctx, http.MethodGet, path, nil, out, errs.ErrFetch)
	})
}

func (s *Service) post(ctx context.Context, path string, body, out interface{}) error {
	return s.cb.Call(func() error {
		return s.do(ctx, http.MethodPost, path, body, out, errs.ErrMutation)
	})
}

func (s *Service) put(ctx context.Context, path string, body, out interface{}) error {
	return s.cb.Call(func() error {
		return s.do(ctx, http.MethodPut, path, body, out, errs.ErrMutation)
	})
}

func (s *Service) delete(ctx context.Context, path string) error {
	return s.cb.Call(func() error {
		return s.do(ctx, http.MethodDelete, path, nil, nil, errs.ErrMutation)
	})
}

func (s *Service) do(ctx context.Context, method, path string, body, out interface{}, kind error) error {
	var rd io.Reader = http.NoBody
	if body != nil {
		b := bytes.NewBuffer(nil)
		if err := json.NewEncoder(b).Encode(body); err != nil {
			return errors.Wrap(kind, err.Error())
		}
		rd = b
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, rd)
	if err != nil {
		return errors.Wrap(kind, err.Error())
	}
	req.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn("catalog request", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return errors.Wrap(kind, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.Wrapf(errs.ErrNotFound, "%s %s", method, path)
	}
	if resp.StatusCode >= 400 {
		s.log.Warn("catalog status", zap.String("method", method), zap.String("path", path), zap.Int("status", resp.StatusCode))
		return errors.Wrapf(kind, "%s %s: status %d", method, path, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(kind, err.Error())
		}
	}
	return nil
}
