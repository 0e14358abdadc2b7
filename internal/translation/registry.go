package translation

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// ProviderEnvVar selects the default translation provider.
	ProviderEnvVar = "TRANSLATION_PROVIDER"
	// DefaultProviderName is used when TRANSLATION_PROVIDER is unset.
	DefaultProviderName = "mymemory"
)

// Kind identifies one supported provider.
type Kind uint8

const (
	kindInvalid Kind = iota
	KindBaidu
	KindYoudao
	KindAlibaba
	KindCaiyun
	KindMyMemory

	kindCount
)

var kindNames = [kindCount]string{
	kindInvalid:  "",
	KindBaidu:    "baidu",
	KindYoudao:   "youdao",
	KindAlibaba:  "alibaba",
	KindCaiyun:   "caiyun",
	KindMyMemory: "mymemory",
}

var kindAliases = map[string]Kind{
	"ali":       KindAlibaba,
	"彩云":        KindCaiyun,
	"my-memory": KindMyMemory,
	"my memory": KindMyMemory,
}

// Kinds lists every provider in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, int(kindCount)-1)
	for kind := KindBaidu; kind < kindCount; kind++ {
		kinds = append(kinds, kind)
	}
	return kinds
}

// ParseKind resolves a provider name or alias, ignoring case and surrounding
// whitespace.
func ParseKind(name string) (Kind, error) {
	normalized := normalizeProviderName(name)
	for kind := KindBaidu; kind < kindCount; kind++ {
		if kindNames[kind] == normalized {
			return kind, nil
		}
	}
	if kind, ok := kindAliases[normalized]; ok {
		return kind, nil
	}
	return kindInvalid, &Error{
		Class:   ErrUnrecognizedProvider,
		Message: fmt.Sprintf("%q (available: %s)", strings.TrimSpace(name), strings.Join(kindNameList(), ", ")),
	}
}

func (k Kind) IsValid() bool {
	return k > kindInvalid && k < kindCount
}

func (k Kind) String() string {
	if !k.IsValid() {
		return "unknown"
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func kindNameList() []string {
	names := make([]string, 0, int(kindCount)-1)
	for _, kind := range Kinds() {
		names = append(names, kind.String())
	}
	return names
}

// Registry stores constructed translators and resolves a default one.
// It is read-only once populated and safe for concurrent lookups.
type Registry struct {
	translators map[Kind]Translator
	defaultKind Kind
}

func NewRegistry(defaultProvider string) *Registry {
	defaultKind, err := ParseKind(defaultProvider)
	if err != nil {
		defaultKind, _ = ParseKind(DefaultProviderName)
	}
	return &Registry{
		translators: make(map[Kind]Translator),
		defaultKind: defaultKind,
	}
}

// Register adds one translator, replacing any previous one of the same kind.
func (r *Registry) Register(t Translator) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}
	if t == nil {
		return fmt.Errorf("translator is nil")
	}
	if !t.Kind().IsValid() {
		return fmt.Errorf("translator kind is invalid")
	}
	r.translators[t.Kind()] = t
	return nil
}

// Translator resolves a translator by name. Empty names use the default provider.
func (r *Registry) Translator(name string) (Translator, error) {
	if r == nil {
		return nil, fmt.Errorf("registry is nil")
	}

	kind := r.defaultKind
	if strings.TrimSpace(name) != "" {
		parsed, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		kind = parsed
	}

	t, ok := r.translators[kind]
	if !ok {
		return nil, &Error{
			Class:    ErrMissingCredentials,
			Provider: kind,
			Message:  fmt.Sprintf("provider is not configured (configured: %s)", strings.Join(r.ProviderNames(), ", ")),
		}
	}
	return t, nil
}

func (r *Registry) DefaultProvider() string {
	if r == nil {
		return ""
	}
	return r.defaultKind.String()
}

func (r *Registry) ProviderNames() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.translators))
	for kind := range r.translators {
		names = append(names, kind.String())
	}
	sort.Strings(names)
	return names
}

func normalizeProviderName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
