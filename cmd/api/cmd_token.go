package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xiebiao/inventory/internal/infrastructure/config"
	"github.com/xiebiao/inventory/internal/interface/http/middleware"
	"github.com/xiebiao/inventory/pkg/jwt"
)

var (
	tokenScopes []string
	tokenExpire time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token <subject>",
	Short: "签发访问写接口的Bearer Token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFrom(configPath)
		if err != nil {
			return err
		}
		if cfg.Auth.Secret == "" {
			return errors.New("未配置auth.secret")
		}

		expire := cfg.Auth.TokenExpire
		if tokenExpire > 0 {
			expire = tokenExpire
		}
		m := jwt.NewManager(cfg.Auth.Secret, expire, cfg.Auth.Issuer)

		token, err := m.GenerateToken(args[0], tokenScopes...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringSliceVar(&tokenScopes, "scope", []string{middleware.WriteScope}, "Token权限")
	tokenCmd.Flags().DurationVar(&tokenExpire, "expire", 0, "有效期（默认使用auth.token_expire）")
}
