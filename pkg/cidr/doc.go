// Package cidr 提供 IPv4/CIDR 子网计算。
//
// cidr 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 以 uint32（网络字节序）为内部运算表示，对给定的 (地址, 前缀长度)
// 推导掩码、反掩码、网络地址、广播地址、可用主机区间、主机数量
// 和地址分类，并提供带网络/主机位分界的二进制渲染。
//
// # 核心功能
//
//   - mask.go: [MaskFromPrefix] / [Wildcard] / [NetworkOf] / [BroadcastOf] /
//     [HostRange] / [HostCount] 纯位运算推导
//   - classify.go: [Classify] 首字节分类表（A/B/C/D/E/Loopback/0.x 保留）
//     及 RFC 1918 私网判断
//   - binary.go: [BinaryGroups] 按前缀分界拆分的二进制分组，[BinaryOctets]
//     固定四组渲染
//   - parse.go: [ParseCIDR] 解析并校验 "A.B.C.D/P" 输入
//   - subnet.go: [Subnet] 聚合一次计算的全部推导值，[Compute] 单趟填充
//   - convert.go: uint32 与 [netip.Addr] 互转
//   - wire.go: [WireReport] JSON 序列化的计算结果
//
// # 快速示例
//
// 解析并计算子网：
//
//	addr, bits, _ := cidr.ParseCIDR("192.168.1.10/24")
//	sn, _ := cidr.Compute(addr, bits)
//	fmt.Println(sn.Network)    // 192.168.1.0
//	fmt.Println(sn.Broadcast)  // 192.168.1.255
//	fmt.Println(sn.Hosts)      // 254
//	fmt.Println(sn.Class)      // Class C, Private Internet
//
// 带分界的二进制渲染：
//
//	tokens := cidr.BinaryGroups(sn.MaskUint32(), 20)
//	// ["11111111" "11111111" "1111" "0000" "00000000"]
//
// # 设计决策
//
//   - 内部以 uint32 做全部位运算，边界处通过 [AddrFromUint32] /
//     [AddrToUint32] 与 [netip.Addr] 互转，零分配比较
//   - [MaskFromPrefix] 显式处理 prefix=0：朴素实现的 "左移 32 位"
//     是未定义行为，此处保证返回全零掩码
//   - [HostCount] 返回 uint64：prefix=0 时主机数为 2^32−2，uint32 放不下
//   - [HostRange] 对 /31 直接复用网络/广播地址作为两个端点（点对点链路，
//     无广播语义）；/32 四值相同（主机路由）
//   - 分类是对首字节的扁平区间查表，无隐藏状态、无网络访问、无 DNS
//   - 所有可失败函数返回 error，预定义错误变量支持 errors.Is
//
// # 输入校验
//
// [ParseCIDR] 是包的校验前门，错误按来源分流：
//
//   - 输入不是恰好两个 '/' 分隔段 → [ErrInvalidFormat]
//   - 地址段不是四个 [0,255] 内的点分八位段 → [ErrInvalidAddress]
//   - 前缀段不是 [0,32] 内的整数 → [ErrInvalidPrefix]
//
// 计算函数（[Compute] 及各推导函数）在输入通过校验后是全函数，
// 不会再产生错误。
//
// # 非目标
//
// 不支持 IPv6、子网拆分/聚合、批量输入。分类仅覆盖传统 class 表
// 和 RFC 1918 私网判断，不做完整的地址用途分类。
package cidr
