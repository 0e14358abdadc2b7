package translation

import (
	"crypto/rand"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"horse.fit/fusiontranslate/internal/metrics"
)

// DefaultCaiyunRequestID is sent when no request id was configured.
const DefaultCaiyunRequestID = "demo"

// Credentials is opaque per-provider secret material.
//
//	baidu:    ID = app id,  Secret = key        (both required)
//	youdao:   ID = app key, Secret = app secret (both required)
//	caiyun:   ID = request id (optional), Secret = token (required)
//	alibaba, mymemory: none
//
// Credentials never render their values through fmt, JSON or zerolog.
type Credentials struct {
	ID     string
	Secret string
}

func (c Credentials) String() string {
	return "Credentials{redacted}"
}

func (c Credentials) GoString() string {
	return c.String()
}

func (c Credentials) MarshalJSON() ([]byte, error) {
	return []byte(`"redacted"`), nil
}

func (c Credentials) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("id_set", strings.TrimSpace(c.ID) != "").
		Bool("secret_set", strings.TrimSpace(c.Secret) != "")
}

// Merge fills blank fields of c from fallback.
func (c Credentials) Merge(fallback Credentials) Credentials {
	if strings.TrimSpace(c.ID) == "" {
		c.ID = fallback.ID
	}
	if strings.TrimSpace(c.Secret) == "" {
		c.Secret = fallback.Secret
	}
	return c
}

type settings struct {
	client   *http.Client
	timeout  time.Duration
	endpoint string
	logger   zerolog.Logger
	metrics  *metrics.Metrics
	random   io.Reader
	clock    func() time.Time
}

// Option customizes a translator at construction time.
type Option func(*settings)

// WithHTTPClient sets the client used for every request. It must be safe for
// concurrent use.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) {
		s.client = client
	}
}

// WithTimeout bounds each request when no custom client is supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.timeout = timeout
	}
}

// WithEndpoint overrides the provider URL.
func WithEndpoint(endpoint string) Option {
	return func(s *settings) {
		s.endpoint = strings.TrimSpace(endpoint)
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *settings) {
		s.metrics = m
	}
}

// WithRandom sets the source used for salts, nonces and node ids. It must be
// safe for concurrent use when the translator is shared.
func WithRandom(r io.Reader) Option {
	return func(s *settings) {
		s.random = r
	}
}

func WithClock(clock func() time.Time) Option {
	return func(s *settings) {
		s.clock = clock
	}
}

// New constructs the translator for kind. Missing required credentials fail
// with ErrMissingCredentials before any network activity.
func New(kind Kind, creds Credentials, opts ...Option) (Translator, error) {
	if !kind.IsValid() {
		return nil, &Error{Class: ErrUnrecognizedProvider, Message: fmt.Sprintf("kind %d", kind)}
	}
	if err := requireCredentials(kind, creds); err != nil {
		return nil, err
	}

	s := settings{
		logger: zerolog.Nop(),
		random: rand.Reader,
		clock:  time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if s.client == nil {
		s.client = newHTTPClient(s.timeout)
	}

	b := base{
		kind:    kind,
		client:  s.client,
		logger:  s.logger.With().Str("provider", kind.String()).Logger(),
		metrics: s.metrics,
		clock:   s.clock,
	}

	switch kind {
	case KindBaidu:
		b.endpoint = endpointOr(s.endpoint, baiduEndpoint)
		return newBaiduTranslator(b, creds, s.random), nil
	case KindYoudao:
		b.endpoint = endpointOr(s.endpoint, youdaoEndpoint)
		nonces, err := newNonceSource(s.random)
		if err != nil {
			return nil, fmt.Errorf("youdao nonce source: %w", err)
		}
		return newYoudaoTranslator(b, creds, nonces), nil
	case KindAlibaba:
		b.endpoint = endpointOr(s.endpoint, alibabaEndpoint)
		return newAlibabaTranslator(b), nil
	case KindCaiyun:
		b.endpoint = endpointOr(s.endpoint, caiyunEndpoint)
		return newCaiyunTranslator(b, creds), nil
	default:
		b.endpoint = endpointOr(s.endpoint, myMemoryEndpoint)
		return newMyMemoryTranslator(b), nil
	}
}

// NewByName parses name with ParseKind and constructs the translator.
func NewByName(name string, creds Credentials, opts ...Option) (Translator, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	return New(kind, creds, opts...)
}

type providerEnv struct {
	BaiduAppID      string `envconfig:"BAIDU_APP_ID"`
	BaiduKey        string `envconfig:"BAIDU_KEY"`
	YoudaoAppKey    string `envconfig:"YOUDAO_APP_KEY"`
	YoudaoAppSecret string `envconfig:"YOUDAO_APP_SECRET"`
	CaiyunToken     string `envconfig:"CAIYUN_TOKEN"`
	CaiyunRequestID string `envconfig:"CAIYUN_REQUEST_ID"`
}

// CredentialsFromEnv reads the credentials of kind from the environment:
//   - BAIDU_APP_ID, BAIDU_KEY
//   - YOUDAO_APP_KEY, YOUDAO_APP_SECRET
//   - CAIYUN_TOKEN, CAIYUN_REQUEST_ID
func CredentialsFromEnv(kind Kind) (Credentials, error) {
	var env providerEnv
	if err := envconfig.Process("", &env); err != nil {
		return Credentials{}, fmt.Errorf("read provider environment: %w", err)
	}
	switch kind {
	case KindBaidu:
		return Credentials{ID: env.BaiduAppID, Secret: env.BaiduKey}, nil
	case KindYoudao:
		return Credentials{ID: env.YoudaoAppKey, Secret: env.YoudaoAppSecret}, nil
	case KindCaiyun:
		return Credentials{ID: env.CaiyunRequestID, Secret: env.CaiyunToken}, nil
	default:
		return Credentials{}, nil
	}
}

// NewFromEnv builds the named translator with credentials from CredentialsFromEnv.
func NewFromEnv(name string, opts ...Option) (Translator, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	creds, err := CredentialsFromEnv(kind)
	if err != nil {
		return nil, err
	}
	return New(kind, creds, opts...)
}

// RequiresCredentials reports whether kind cannot be constructed without
// credentials.
func (k Kind) RequiresCredentials() bool {
	switch k {
	case KindBaidu, KindYoudao, KindCaiyun:
		return true
	default:
		return false
	}
}

func requireCredentials(kind Kind, creds Credentials) error {
	id := strings.TrimSpace(creds.ID) != ""
	secret := strings.TrimSpace(creds.Secret) != ""

	var missing string
	switch kind {
	case KindBaidu:
		if !id || !secret {
			missing = "app id and key are required"
		}
	case KindYoudao:
		if !id || !secret {
			missing = "app key and app secret are required"
		}
	case KindCaiyun:
		if !secret {
			missing = "token is required"
		}
	}
	if missing == "" {
		return nil
	}
	return &Error{Class: ErrMissingCredentials, Provider: kind, Message: missing}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

func endpointOr(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}
