package cidr

// WireReport 是一次子网计算结果的序列化格式。
// 地址字段使用点分十进制字符串，便于 JSON/YAML 消费端直接展示。
type WireReport struct {
	Address   string `json:"address" yaml:"address"`
	Netmask   string `json:"netmask" yaml:"netmask"`
	Prefix    int    `json:"prefix" yaml:"prefix"`
	Wildcard  string `json:"wildcard" yaml:"wildcard"`
	Network   string `json:"network" yaml:"network"`
	HostMin   string `json:"hostmin" yaml:"hostmin"`
	HostMax   string `json:"hostmax" yaml:"hostmax"`
	Broadcast string `json:"broadcast" yaml:"broadcast"`
	Hosts     uint64 `json:"hosts" yaml:"hosts"`
	Class     string `json:"class" yaml:"class"`
	Private   bool   `json:"private" yaml:"private"`
}

// WireReportFrom 从 [Subnet] 创建 WireReport。
// Subnet 由 [Compute] 填充后总是有效，转换不会失败。
func WireReportFrom(s Subnet) WireReport {
	return WireReport{
		Address:   s.Addr.String(),
		Netmask:   s.Mask.String(),
		Prefix:    s.Bits,
		Wildcard:  s.Wildcard.String(),
		Network:   s.Network.String(),
		HostMin:   s.HostMin.String(),
		HostMax:   s.HostMax.String(),
		Broadcast: s.Broadcast.String(),
		Hosts:     s.Hosts,
		Class:     s.Class.Class.String(),
		Private:   s.Class.Private,
	}
}
