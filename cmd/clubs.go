package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clubcompass/clubcompass/internal/api"
)

var clubsCmd = &cobra.Command{
	Use:   "clubs",
	Short: "List the club catalog on stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		domain, _ := cmd.Flags().GetString("domain")
		if domain != "" {
			found := false
			for _, d := range api.Domains {
				if strings.EqualFold(d, domain) {
					domain = d
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("unknown domain %q (one of: %s)", domain, strings.Join(api.Domains, ", "))
			}
		}

		client := api.New(cfg)
		clubs, err := client.Clubs(cmd.Context(), domain)
		if err != nil {
			return err
		}

		for _, club := range clubs {
			fmt.Printf("%-30s  %-10s  %-8s  %d members\n",
				club.Name, club.Domain, club.RecruitmentStatus, club.MemberCount)
		}
		return nil
	},
}

func init() {
	clubsCmd.Flags().String("domain", "", "Filter by domain")
}
