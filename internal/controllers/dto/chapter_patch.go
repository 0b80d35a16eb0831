package dto

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/bionicotaku/lingo-services-course/internal/services"
)

// ErrPatchNotObject 表示补丁请求体不是 JSON 对象。
var ErrPatchNotObject = errors.New("patch body must be a json object")

// DecodeChapterPatch 按键出现顺序将 JSON 对象解析为补丁操作。
// 仅识别 title、description、isFree、videoUrl；未知键、null 与类型不符的值被忽略。
func DecodeChapterPatch(body []byte) ([]services.ChapterPatchOp, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	tok, err := dec.Token()
	if err != nil {
		return nil, ErrPatchNotObject
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrPatchNotObject
	}

	ops := make([]services.ChapterPatchOp, 0, 4)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		if op, ok := patchOp(key, raw); ok {
			ops = append(ops, op)
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return ops, nil
}

func patchOp(key string, raw json.RawMessage) (services.ChapterPatchOp, bool) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}
	switch key {
	case "title":
		var v string
		if json.Unmarshal(raw, &v) != nil {
			return nil, false
		}
		return services.SetChapterTitle{Title: v}, true
	case "description":
		var v string
		if json.Unmarshal(raw, &v) != nil {
			return nil, false
		}
		return services.SetChapterDescription{Description: v}, true
	case "isFree":
		var v bool
		if json.Unmarshal(raw, &v) != nil {
			return nil, false
		}
		return services.SetChapterFree{IsFree: v}, true
	case "videoUrl":
		var v string
		if json.Unmarshal(raw, &v) != nil {
			return nil, false
		}
		return services.SetChapterVideoURL{VideoURL: v}, true
	}
	return nil, false
}
