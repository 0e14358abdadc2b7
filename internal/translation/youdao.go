package translation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"horse.fit/fusiontranslate/internal/language"
)

const youdaoEndpoint = "https://openapi.youdao.com/api"

var youdaoSolutions = map[string]string{
	"101": "缺少必填的参数。解决方案：请检查是否传递了所有必要参数。",
	"102": "不支持的语言类型。解决方案：检查源语言和目标语言是否在语言列表中。",
	"103": "翻译文本过长。解决方案：请缩短请求文本。",
	"108": "应用ID无效。解决方案：请检查appKey是否正确。",
	"110": "无相关服务的有效应用。解决方案：请在控制台为应用绑定文本翻译服务。",
	"111": "开发者账号无效。解决方案：请检查账号状态。",
	"113": "q不能为空。",
	"202": "签名检验失败。解决方案：请检查appKey、appSecret和签名生成方式。",
	"206": "因为时间戳无效导致签名校验失败。解决方案：请检查本机时钟。",
	"207": "重放请求。解决方案：每次请求使用新的salt。",
	"401": "账户已经欠费。解决方案：请前往控制台充值。",
	"411": "访问频率受限。解决方案：请稍后访问。",
	"412": "长请求过于频繁。解决方案：请稍后访问。",
}

const youdaoUnknownSolution = "未知错误"

// YoudaoSolution returns the remediation text for a Youdao error code.
func YoudaoSolution(code string) string {
	if solution, ok := youdaoSolutions[strings.TrimSpace(code)]; ok {
		return solution
	}
	return youdaoUnknownSolution
}

// YoudaoTranslator calls the Youdao open API with v3 signatures.
type YoudaoTranslator struct {
	base
	appKey    string
	appSecret string
	nonces    *nonceSource
}

func newYoudaoTranslator(b base, creds Credentials, nonces *nonceSource) *YoudaoTranslator {
	return &YoudaoTranslator{
		base:      b,
		appKey:    strings.TrimSpace(creds.ID),
		appSecret: strings.TrimSpace(creds.Secret),
		nonces:    nonces,
	}
}

func (t *YoudaoTranslator) Translate(ctx context.Context, req Request) (resp *Response, err error) {
	started := time.Now()
	defer func() { t.observe(started, 1, err) }()

	batch, err := t.translateBatch(ctx, BatchRequest{
		Texts:  []string{req.Text},
		Source: req.Source,
		Target: req.Target,
	})
	if err != nil {
		return nil, err
	}
	batch.Texts = []string{strings.Join(batch.Texts, "\n")}
	return singleFromBatch(t.kind, batch)
}

// TranslateBatch signs the newline-joined texts as one query.
func (t *YoudaoTranslator) TranslateBatch(ctx context.Context, req BatchRequest) (resp *BatchResponse, err error) {
	if len(req.Texts) == 0 {
		return emptyBatch(t.kind, req), nil
	}
	started := time.Now()
	defer func() { t.observe(started, len(req.Texts), err) }()

	resp, err = t.translateBatch(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(resp.Texts) != len(req.Texts) {
		return nil, segmentMismatchError(t.kind, len(req.Texts), len(resp.Texts))
	}
	return resp, nil
}

func (t *YoudaoTranslator) translateBatch(ctx context.Context, req BatchRequest) (*BatchResponse, error) {
	from, err := sourceWireCode(t.kind, req.Source)
	if err != nil {
		return nil, err
	}
	to, err := targetWireCode(t.kind, req.Target)
	if err != nil {
		return nil, err
	}

	now := t.clock()
	salt, err := t.nonces.Next(now)
	if err != nil {
		return nil, fmt.Errorf("youdao salt: %w", err)
	}
	curtime := strconv.FormatInt(now.Unix(), 10)
	query := strings.Join(req.Texts, "\n")

	form := url.Values{}
	form.Set("from", from)
	form.Set("to", to)
	form.Set("signType", "v3")
	form.Set("curtime", curtime)
	form.Set("appKey", t.appKey)
	form.Set("q", query)
	form.Set("salt", salt.String())
	form.Set("sign", youdaoSign(t.appKey, query, salt.String(), curtime, t.appSecret))

	started := time.Now()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, transportError(t.kind, fmt.Errorf("build request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := t.send(httpReq)
	if err != nil {
		return nil, err
	}

	var parsed youdaoResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, decodeError(t.kind, err)
	}
	if parsed.ErrorCode != "" && parsed.ErrorCode != "0" {
		code := string(parsed.ErrorCode)
		return nil, rejectedError(t.kind, code, YoudaoSolution(code))
	}
	if parsed.Translation == nil {
		return nil, emptyResultError(t.kind, "translation is null")
	}

	detected, lang, err := t.decodeDirection(parsed.L)
	if err != nil {
		return nil, err
	}
	if lang == language.Undetermined {
		lang = req.Target
	}

	texts := make([]string, 0, len(req.Texts))
	for _, translated := range parsed.Translation {
		texts = append(texts, strings.Split(translated, "\n")...)
	}

	return &BatchResponse{
		Texts:          texts,
		Lang:           lang,
		DetectedSource: detected,
		Provider:       t.kind,
		LatencyMs:      time.Since(started).Milliseconds(),
	}, nil
}

// decodeDirection parses the "l" field, formatted as "<from>2<to>".
func (t *YoudaoTranslator) decodeDirection(l string) (language.Code, language.Code, error) {
	from, to, ok := strings.Cut(strings.TrimSpace(l), "2")
	if !ok {
		return language.Undetermined, language.Undetermined, nil
	}
	source, err := decodeWireCode(t.kind, from)
	if err != nil {
		return language.Undetermined, language.Undetermined, err
	}
	target, err := decodeWireCode(t.kind, to)
	if err != nil {
		return language.Undetermined, language.Undetermined, err
	}
	return source, target, nil
}

// youdaoSign computes the v3 signature:
// sha256hex(appKey + truncate(q) + salt + curtime + appSecret).
func youdaoSign(appKey, query, salt, curtime, appSecret string) string {
	sum := sha256.Sum256([]byte(appKey + truncate(query) + salt + curtime + appSecret))
	return hex.EncodeToString(sum[:])
}

// truncate shortens q for signing. Inputs of at most 20 code points are kept;
// longer ones become the first 10, the decimal length, then the last 10.
func truncate(q string) string {
	runes := []rune(q)
	size := len(runes)
	if size <= 20 {
		return q
	}
	return string(runes[:10]) + strconv.Itoa(size) + string(runes[size-10:])
}

type youdaoResponse struct {
	ErrorCode   wireCode `json:"errorCode"`
	Translation []string `json:"translation"`
	L           string   `json:"l"`
}
