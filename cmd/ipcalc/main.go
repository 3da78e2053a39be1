// ipcalc 是 IPv4/CIDR 子网计算器。
//
// 用法:
//
//	ipcalc [选项] <A.B.C.D/P>
//
// 选项:
//
//	-j, --json      以 JSON 输出计算结果
//	-c, --no-color  禁用 ANSI 颜色
//
// 退出码:
//
//	0: 计算成功并输出报告
//	1: 输入校验失败（整体格式、地址或前缀无效）
//	2: 参数错误（未知选项、缺少或多余的位置参数）
//
// 示例:
//
//	ipcalc 192.168.1.10/24
//	ipcalc 10.0.0.0/31
//	ipcalc --json 8.8.8.8/32
//	ipcalc --no-color 172.16.0.1/12
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/ipcalc/pkg/cidr"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// usageError 表示位置参数错误（缺少或多余），映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:      "ipcalc",
		Usage:     "IPv4/CIDR 子网计算器",
		ArgsUsage: "<A.B.C.D/P>",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "以 JSON 输出计算结果",
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Aliases: []string{"c"},
				Usage:   "禁用 ANSI 颜色",
			},
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return &usageError{msg: fmt.Sprintf("expected exactly one <address>/<prefix> argument, got %d", len(args))}
			}
			if cmd.Bool("no-color") {
				pterm.DisableColor()
			}

			addr, bits, err := cidr.ParseCIDR(args[0])
			if err != nil {
				return err
			}
			sn, err := cidr.Compute(addr, bits)
			if err != nil {
				return err
			}

			if cmd.Bool("json") {
				return renderJSON(cmd.Writer, sn)
			}
			renderReport(cmd.Writer, sn)
			return nil
		},
		Description: `ipcalc 接受一个 "地址/前缀长度" 形式的参数，计算该子网的
掩码、反掩码、网络地址、广播地址、可用主机区间、主机数量
和地址分类（传统 class 表 + RFC 1918 私网判断），并以
点分十进制与二进制两种形式并列输出。

地址/掩码/网络三行的二进制列在前缀落入八位段内部时，
会在网络位与主机位的分界处拆分分组。`,
	}
}

func run(args []string) int {
	app := createApp()

	if err := app.Run(context.Background(), args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "ipcalc: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			// ExitErrHandler 或 flag 解析器已向 stderr 输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintln(os.Stderr, pterm.FgRed.Sprint("ipcalc: "+err.Error()))
		return 1
	}

	return 0
}

// isCLIUsageError 判断是否为 CLI 框架产生的参数解析错误。
// urfave/cli 对未知 flag 等场景返回普通 error，无专用类型可断言，
// 只能按消息特征识别。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "Incorrect Usage")
}
