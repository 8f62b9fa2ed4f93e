// farmsim 是一个俯视角的农场模拟游戏
//
// Usage:
//
//	farmsim run                          - 打开游戏窗口
//	farmsim tui                          - 在终端中游玩
//	farmsim simulate --days 10 --plant corn
//	                                     - 无界面模拟若干天并打印农田
//	farmsim inspect                      - 打印地图概要
//
// Global flags:
//
//	--seed <value>   - 随机种子（0 表示按时间）
//	--config <dir>   - 覆盖配置的目录（其中的 data/*.yaml 优先于内置配置）
//	--map <path>     - 使用磁盘上的地图文件
//	--assets <dir>   - 贴图目录（包含 assets/graphics）
//	--verbose        - 输出调试日志
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/decker502/farmsim"
	"github.com/decker502/farmsim/pkg/embedded"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagMap     string
	flagAssets  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "farmsim",
	Short: "A top-down farming simulation",
	Long: `farmsim is a small farming game: till the soil, plant and water
crops, harvest them, chop trees and trade at the shop while days
pass with rain and sunshine.

Examples:
  farmsim run
  farmsim tui --seed 42
  farmsim simulate --days 10 --plant corn
  farmsim inspect --map ./my-farm.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 日志级别必须在创建任何系统之前设置（各系统在构造时创建子 logger）
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
		embedded.Init(os.DirFS(flagAssets), farmsim.Data)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Directory whose data/*.yaml files override the built-in configs")
	rootCmd.PersistentFlags().StringVar(&flagMap, "map", "", "Path to a map YAML file on disk")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", ".", "Directory containing assets/graphics")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(inspectCmd)
}
