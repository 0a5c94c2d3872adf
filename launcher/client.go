package launcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/stowatch/stowatch"
	"github.com/stowatch/stowatch/internal/pattern"
)

// Sentinel errors for response handling.
var (
	// ErrNoData reports an empty response body.
	ErrNoData = errors.New("no data in response")
	// ErrTooMuchData reports a body exceeding Config.MaxResponseBytes.
	ErrTooMuchData = errors.New("response exceeds size cap")
)

// statusKey is the JSON member the launcher endpoint reports.
const statusKey = "server_status"

// Status is the reported launcher state.
type Status int

const (
	StatusUnknown Status = iota
	StatusOnline
	StatusOffline
)

func (s Status) String() string {
	switch s {
	case StatusOnline:
		return "online"
	case StatusOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// Client polls the launcher endpoint. Construct with New; the zero value is
// not usable.
type Client struct {
	cfg    Config
	hc     *http.Client
	logger log.Logger
}

// New returns a Client for the given configuration. A nil logger is valid
// and disables logging.
func New(cfg Config, logger log.Logger) *Client {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Client{
		cfg:    cfg,
		hc:     &http.Client{Timeout: cfg.Timeout.Std()},
		logger: logger,
	}
}

// launcherHeaders is the fixed header set the launcher expects; the endpoint
// serves browsers of that vintage and keys off several of these.
func launcherHeaders(host string) http.Header {
	h := http.Header{}
	h.Set("Host", host)
	h.Set("Connection", "keep-alive")
	h.Set("Content-Length", "0")
	h.Set("Accept", "application/json, text/javascript, */*, q=0.01")
	h.Set("User-Agent", "Mozilla/4.0 (compatible, CrypticLauncher)")
	h.Set("X-Accept-Language-Cryptic", "en-US")
	h.Set("X-Cryptic-Affiliate", "appid=9900")
	h.Set("X-Cryptic-Version", "3")
	h.Set("X-Requested-With", "XMLHttpRequest")
	h.Set("Origin", "http://"+host)
	h.Set("Referer", "http://"+host+"/launcher")
	h.Set("Accept-Encoding", "gzip, deflate")
	h.Set("Accept-Language", "en-US,en,q=0.9")
	return h
}

// Fetch performs the status GET and returns the raw body, bounded by the
// configured response cap.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	url := fmt.Sprintf("http://%s:%d%s", c.cfg.Host, c.cfg.Port, c.cfg.Path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build status request")
	}
	req.Header = launcherHeaders(c.cfg.Host)

	level.Debug(c.logger).Log("msg", "fetching launcher status", "url", url)
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "perform status request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxResponseBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "read status response")
	}
	if len(body) == 0 {
		return nil, ErrNoData
	}
	if int64(len(body)) > c.cfg.MaxResponseBytes {
		return nil, errors.Wrapf(ErrTooMuchData, "read %d bytes", len(body))
	}
	level.Debug(c.logger).Log("msg", "fetched launcher status", "bytes", len(body), "code", resp.StatusCode)
	return body, nil
}

// Inflate locates a gzip payload inside body by magic-number search and
// decompresses it. Bodies without a gzip marker pass through untouched;
// transports that already decoded the content encoding land here.
func Inflate(body []byte) ([]byte, error) {
	payload, ok := pattern.GzipPayload(body)
	if !ok {
		return body, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "open gzip payload")
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, errors.Wrap(err, "inflate gzip payload")
	}
	return out, nil
}

// ServerStatus fetches the endpoint and reports the launcher state together
// with the raw status text. Extraction is two-tier: the cheap single-field
// extractor first, the full value parser as fallback when the fast path
// cannot find or decode the member.
func (c *Client) ServerStatus(ctx context.Context) (Status, string, error) {
	body, err := c.Fetch(ctx)
	if err != nil {
		return StatusUnknown, "", err
	}
	text, err := Inflate(body)
	if err != nil {
		return StatusUnknown, "", err
	}

	raw, err := stowatch.ExtractString(text, statusKey)
	if err != nil {
		level.Debug(c.logger).Log("msg", "fast extraction failed, falling back to full parse", "err", err)
		raw, err = parseStatusDocument(text)
		if err != nil {
			return StatusUnknown, "", err
		}
	}

	switch raw {
	case "up":
		return StatusOnline, raw, nil
	case "down":
		return StatusOffline, raw, nil
	default:
		return StatusUnknown, raw, nil
	}
}

// parseStatusDocument runs the full tree parser over the payload and narrows
// down to the status member.
func parseStatusDocument(text []byte) (string, error) {
	v, err := stowatch.ParseBytes(text)
	if err != nil {
		return "", errors.Wrap(err, "parse status document")
	}
	members, err := v.Members()
	if err != nil {
		return "", errors.Wrap(err, "narrow status document")
	}
	raw, err := members[statusKey].Text()
	if err != nil {
		return "", errors.Wrapf(err, "narrow %s member", statusKey)
	}
	return raw, nil
}
