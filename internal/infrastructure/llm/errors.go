package llm

import (
	"context"
	"errors"
	"net"
	"regexp"
	"strings"

	"google.golang.org/genai"
)

// ErrEmptyResponse 模型返回空文本
var ErrEmptyResponse = errors.New("empty llm response")

// ErrorKind 上游错误分类，仅用于日志、指标与错误码，不触发重试
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindTransient
	KindPermanent
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindTransient:
		return "transient"
	default:
		return "permanent"
	}
}

// transientStatus 错误文本中独立出现的可恢复状态码
var transientStatus = regexp.MustCompile(`\b(429|500|502|503|504)\b`)

// transientMarkers 上游错误文本中表示可恢复故障的片段
var transientMarkers = []string{
	"too many requests", "rate limit", "resource_exhausted", "unavailable",
	"timeout", "timed out", "connection reset", "connection refused",
}

// Classify 将上游错误划分为瞬时或永久
//
// 瞬时：超时（含等待并发名额超时）、网络错误、429 与 5xx。其余均为永久。
func Classify(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTransient
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, ErrEmptyResponse) {
		return KindPermanent
	}

	if code, ok := apiErrorCode(err); ok {
		if code == 429 || code >= 500 {
			return KindTransient
		}
		return KindPermanent
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindTransient
	}

	msg := strings.ToLower(err.Error())
	if transientStatus.MatchString(msg) {
		return KindTransient
	}
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return KindTransient
		}
	}
	return KindPermanent
}

func apiErrorCode(err error) (int, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, true
	}
	return 0, false
}
