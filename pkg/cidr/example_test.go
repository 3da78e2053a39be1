package cidr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/netip"

	"github.com/omeyang/ipcalc/pkg/cidr"
)

func ExampleCompute() {
	addr, bits, err := cidr.ParseCIDR("192.168.1.10/24")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sn, err := cidr.Compute(addr, bits)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sn.Network)
	fmt.Println(sn.Broadcast)
	fmt.Println(sn.HostMin, "-", sn.HostMax)
	fmt.Println(sn.Hosts)
	fmt.Println(sn.Class)
	// Output:
	// 192.168.1.0
	// 192.168.1.255
	// 192.168.1.1 - 192.168.1.254
	// 254
	// Class C, Private Internet
}

func ExampleBinaryGroups() {
	// prefix=20 的分界落在第 3 个八位段内部，该段被拆成两个 token
	fmt.Println(cidr.BinaryGroups(cidr.MaskFromPrefix(20), 20))
	fmt.Println(cidr.BinaryGroups(cidr.MaskFromPrefix(24), 24))
	// Output:
	// [11111111 11111111 1111 0000 00000000]
	// [11111111 11111111 11111111 00000000]
}

func ExampleParseCIDR() {
	_, _, err := cidr.ParseCIDR("1.2.3.4/33")
	fmt.Println(errors.Is(err, cidr.ErrInvalidPrefix))

	_, _, err = cidr.ParseCIDR("1.2.3.4")
	fmt.Println(errors.Is(err, cidr.ErrInvalidFormat))
	// Output:
	// true
	// true
}

func ExampleSubnet_Contains() {
	addr, bits, _ := cidr.ParseCIDR("10.0.0.0/8")
	sn, _ := cidr.Compute(addr, bits)
	fmt.Println(sn.Contains(netip.MustParseAddr("10.200.1.1")))
	fmt.Println(sn.Contains(netip.MustParseAddr("11.0.0.1")))
	// Output:
	// true
	// false
}

func ExampleWireReportFrom() {
	addr, bits, _ := cidr.ParseCIDR("10.0.0.0/31")
	sn, _ := cidr.Compute(addr, bits)
	data, _ := json.Marshal(cidr.WireReportFrom(sn))
	fmt.Println(string(data))
	// Output:
	// {"address":"10.0.0.0","netmask":"255.255.255.254","prefix":31,"wildcard":"0.0.0.1","network":"10.0.0.0","hostmin":"10.0.0.0","hostmax":"10.0.0.1","broadcast":"10.0.0.1","hosts":2,"class":"Class A","private":true}
}
