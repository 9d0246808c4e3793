package store

import "errors"

// ErrNotFound 查無資料，或資料不屬於目前使用者。
// 兩種情況對呼叫端不可區分，避免洩漏其他使用者資料的存在。
var ErrNotFound = errors.New("record not found")
