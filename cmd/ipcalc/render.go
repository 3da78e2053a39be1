package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/netip"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/omeyang/ipcalc/pkg/cidr"
)

// 报告的三种列样式：标签暗色、点分十进制蓝色加粗、二进制品红加粗。
var (
	labelStyle = pterm.NewStyle(pterm.FgDarkGray)
	valueStyle = pterm.NewStyle(pterm.FgLightBlue, pterm.Bold)
	binStyle   = pterm.NewStyle(pterm.FgLightMagenta, pterm.Bold)
)

// renderReport 输出人类可读的子网报告。
//
// 布局为固定多行：Address / Netmask / Wildcard、空行、
// Network / HostMin / HostMax / Broadcast、空行、Hosts/Net + 分类。
// Address、Netmask、Network 三行的二进制列带网络/主机分界拆分
// （[cidr.BinaryGroups]），其余行恒为四个不拆分的 8 位组。
func renderReport(w io.Writer, sn cidr.Subnet) {
	addrV, _ := cidr.AddrToUint32(sn.Addr)
	netV, _ := cidr.AddrToUint32(sn.Network)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\t%s\t\t%s\n",
		labelStyle.Sprint("Address:"),
		valueStyle.Sprint(sn.Addr.String()),
		binStyle.Sprint(cidr.BinaryString(addrV, sn.Bits)))
	fmt.Fprintf(w, "%s\t%s\t= %s\t%s\n",
		labelStyle.Sprint("Netmask:"),
		valueStyle.Sprint(sn.Mask.String()),
		valueStyle.Sprint(strconv.Itoa(sn.Bits)),
		binStyle.Sprint(cidr.BinaryString(sn.MaskUint32(), sn.Bits)))
	fmt.Fprintf(w, "%s\t%s\t\t%s\n",
		labelStyle.Sprint("Wildcard:"),
		valueStyle.Sprint(sn.Wildcard.String()),
		binStyle.Sprint(unsplitBinary(sn.Wildcard)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\t%s\t\t%s\n",
		labelStyle.Sprint("Network:"),
		valueStyle.Sprint(sn.String()),
		binStyle.Sprint(cidr.BinaryString(netV, sn.Bits)))
	fmt.Fprintf(w, "%s\t%s\t\t%s\n",
		labelStyle.Sprint("HostMin:"),
		valueStyle.Sprint(sn.HostMin.String()),
		binStyle.Sprint(unsplitBinary(sn.HostMin)))
	fmt.Fprintf(w, "%s\t%s\t\t%s\n",
		labelStyle.Sprint("HostMax:"),
		valueStyle.Sprint(sn.HostMax.String()),
		binStyle.Sprint(unsplitBinary(sn.HostMax)))
	fmt.Fprintf(w, "%s\t%s\t\t%s\n",
		labelStyle.Sprint("Broadcast:"),
		valueStyle.Sprint(sn.Broadcast.String()),
		binStyle.Sprint(unsplitBinary(sn.Broadcast)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		labelStyle.Sprint("Hosts/Net:"),
		valueStyle.Sprint(strconv.FormatUint(sn.Hosts, 10)),
		binStyle.Sprint(sn.Class.String()))
	fmt.Fprintln(w)
}

// unsplitBinary 渲染不带分界拆分的二进制列。
func unsplitBinary(addr netip.Addr) string {
	v, _ := cidr.AddrToUint32(addr)
	return strings.Join(cidr.BinaryOctets(v), " ")
}

// renderJSON 以缩进 JSON 输出计算结果。
func renderJSON(w io.Writer, sn cidr.Subnet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cidr.WireReportFrom(sn))
}
