package translation

import (
	"context"
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"horse.fit/fusiontranslate/internal/language"
)

const baiduEndpoint = "https://fanyi-api.baidu.com/api/trans/vip/translate"

// baiduSolutions is Baidu's published error code table.
var baiduSolutions = map[string]string{
	"52000": "成功",
	"52001": "请求超时。解决方案：请重试。",
	"52002": "系统错误。解决方案：请重试。",
	"52003": "未授权用户。解决方案：请检查appid是否正确或服务是否已开通。",
	"54000": "必填参数为空。解决方案：请检查是否传递了所有必要参数。",
	"54001": "签名错误。解决方案：请检查签名生成方式。",
	"54003": "访问频率受限。解决方案：请降低调用频率，或通过认证后切换到高级版本。",
	"54004": "账户余额不足。解决方案：请前往管理控制台充值。",
	"54005": "长查询请求过于频繁。解决方案：请降低长查询的发送频率，3秒后重试。",
	"58000": "客户端IP非法。解决方案：检查个人信息中填写的IP地址是否正确，可前往开发者信息-基本信息进行修改。",
	"58001": "目标语言方向不支持。解决方案：检查目标语言是否在语言列表中。",
	"58002": "服务目前已下线。解决方案：请前往管理控制台开启服务。",
	"58003": "同一IP当日使用多个APPID发送翻译请求，该IP将在当日剩余时间内被禁止请求，次日解封。请勿将APPID和密钥输入第三方软件。",
	"90107": "认证未通过或已失效。解决方案：请前往我的认证查看认证进度。",
	"20003": "请检查请求文本是否涉及颠覆、暴力或类似主题相关内容。",
}

const baiduUnknownSolution = "未知错误"

// BaiduSolution returns the remediation text for a Baidu error code. Unknown
// codes map to a generic entry.
func BaiduSolution(code string) string {
	if solution, ok := baiduSolutions[strings.TrimSpace(code)]; ok {
		return solution
	}
	return baiduUnknownSolution
}

// BaiduTranslator calls the Baidu general translation API. Requests are form
// POSTs signed with md5(appid + q + salt + key).
type BaiduTranslator struct {
	base
	appID  string
	key    string
	random io.Reader
}

func newBaiduTranslator(b base, creds Credentials, random io.Reader) *BaiduTranslator {
	return &BaiduTranslator{
		base:   b,
		appID:  strings.TrimSpace(creds.ID),
		key:    strings.TrimSpace(creds.Secret),
		random: random,
	}
}

func (t *BaiduTranslator) Translate(ctx context.Context, req Request) (resp *Response, err error) {
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
	// Baidu splits its input on newlines; a single text spanning lines comes
	// back as several sentences.
	batch.Texts = []string{strings.Join(batch.Texts, "\n")}
	return singleFromBatch(t.kind, batch)
}

// TranslateBatch sends texts newline-joined; Baidu returns one result per line.
// Texts that contain newlines themselves yield ErrSegmentMismatch.
func (t *BaiduTranslator) TranslateBatch(ctx context.Context, req BatchRequest) (resp *BatchResponse, err error) {
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

func (t *BaiduTranslator) translateBatch(ctx context.Context, req BatchRequest) (*BatchResponse, error) {
	from, err := sourceWireCode(t.kind, req.Source)
	if err != nil {
		return nil, err
	}
	to, err := targetWireCode(t.kind, req.Target)
	if err != nil {
		return nil, err
	}
	salt, err := t.newSalt()
	if err != nil {
		return nil, err
	}

	query := strings.Join(req.Texts, "\n")
	form := url.Values{}
	form.Set("q", query)
	form.Set("from", from)
	form.Set("to", to)
	form.Set("appid", t.appID)
	form.Set("salt", salt)
	form.Set("sign", baiduSign(t.appID, query, salt, t.key))

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

	result, err := decodeBaiduResponse(body)
	if err != nil {
		return nil, err
	}

	lang, err := decodeWireCode(t.kind, result.To)
	if err != nil {
		return nil, err
	}
	if lang == language.Undetermined {
		lang = req.Target
	}
	detected, err := decodeWireCode(t.kind, result.From)
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(result.TransResult))
	for _, sentence := range result.TransResult {
		texts = append(texts, sentence.Dst)
	}

	return &BatchResponse{
		Texts:          texts,
		Lang:           lang,
		DetectedSource: detected,
		Provider:       t.kind,
		LatencyMs:      time.Since(started).Milliseconds(),
	}, nil
}

// newSalt draws a decimal salt from the configured random source.
func (t *BaiduTranslator) newSalt() (string, error) {
	var buf [4]byte
	if _, err := io.ReadFull(t.random, buf[:]); err != nil {
		return "", fmt.Errorf("baidu salt: %w", err)
	}
	return strconv.FormatUint(uint64(binary.BigEndian.Uint32(buf[:])), 10), nil
}

// baiduSign computes the request signature: lowercase hex of
// md5(appid + q + salt + key). The query is signed before URL encoding.
func baiduSign(appID, query, salt, key string) string {
	sum := md5.Sum([]byte(appID + query + salt + key))
	return hex.EncodeToString(sum[:])
}

type baiduSuccess struct {
	From        string          `json:"from"`
	To          string          `json:"to"`
	TransResult []baiduSentence `json:"trans_result"`
}

type baiduSentence struct {
	Src string `json:"src"`
	Dst string `json:"dst"`
}

type baiduFailure struct {
	ErrorCode wireCode `json:"error_code"`
	ErrorMsg  string   `json:"error_msg"`
}

// decodeBaiduResponse tries the success shape first and falls back to the
// error shape. The two share no discriminator field.
func decodeBaiduResponse(body []byte) (*baiduSuccess, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, decodeError(KindBaidu, err)
	}

	if _, ok := fields["trans_result"]; ok {
		var success baiduSuccess
		if err := json.Unmarshal(body, &success); err == nil {
			if success.TransResult == nil {
				return nil, emptyResultError(KindBaidu, "trans_result is null")
			}
			return &success, nil
		}
	}

	if _, ok := fields["error_code"]; ok {
		var failure baiduFailure
		if err := json.Unmarshal(body, &failure); err != nil {
			return nil, decodeError(KindBaidu, err)
		}
		code := string(failure.ErrorCode)
		e := rejectedError(KindBaidu, code, BaiduSolution(code))
		if msg := strings.TrimSpace(failure.ErrorMsg); msg != "" {
			e.Err = errors.New(msg)
		}
		return nil, e
	}

	return nil, decodeError(KindBaidu, errors.New("response matches neither result nor error shape"))
}
