package mysql

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 判断是否为MySQL唯一索引冲突错误
// MySQL错误码:
// - 1062: Duplicate entry 'xxx' for key 'yyy'
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// 未开启TranslateError时只能看错误信息
	return strings.Contains(err.Error(), "Duplicate entry")
}

// isNotFound 记录不存在
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// joinTags 标签列表 → 逗号拼接
func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// splitTags 逗号拼接 → 标签列表,空字符串返回空列表
func splitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
