// inventory-api 商品、订单与销售报表服务
//
// 子命令：
//
//	inventory-api serve              启动HTTP服务
//	inventory-api migrate            只执行数据库迁移
//	inventory-api token <subject>    签发写接口Token
//	inventory-api events             消费并记录订单事件
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configPath 通过--config指定配置文件，为空时按默认路径查找
var configPath string

var rootCmd = &cobra.Command{
	Use:          "inventory-api",
	Short:        "商品、订单与销售报表服务",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径（默认./config/config.yaml）")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(eventsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
