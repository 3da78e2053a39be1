package cidr

import "errors"

var (
	// ErrInvalidFormat 表示输入不是 "address/prefix" 形式。
	ErrInvalidFormat = errors.New("cidr: invalid format, expected \"address/prefix\"")

	// ErrInvalidAddress 表示无效的 IPv4 地址。
	ErrInvalidAddress = errors.New("cidr: invalid IPv4 address")

	// ErrInvalidPrefix 表示前缀长度超出 [0,32]。
	ErrInvalidPrefix = errors.New("cidr: invalid prefix length")
)
