package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/EISEC/spb-remont/config"
	"github.com/EISEC/spb-remont/httpclient"
	"github.com/EISEC/spb-remont/logger"
	"github.com/EISEC/spb-remont/search"
	"github.com/EISEC/spb-remont/services"
	"github.com/EISEC/spb-remont/taxonomy"
	"github.com/EISEC/spb-remont/wpclient"
)

func newBlogService() *services.BlogService {
	cfg := config.GetConfig()
	httpClient := httpclient.New(httpclient.Config{
		Timeout: time.Duration(cfg.WordPress.TimeoutSeconds) * time.Second,
	})
	client := wpclient.NewWithHTTPClient(httpClient, cfg.WordPress.BaseURL)
	return services.NewBlogService(client, taxonomy.New(client))
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "blogctl",
		Short: "Operator tooling for the blog content adapter",
	}
	root.AddCommand(newSlugsCmd(), newSearchCmd())
	return root
}

func newSlugsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slugs",
		Short: "Print all post slugs for static route generation",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newBlogService()
			for _, slug := range svc.GenerateStaticSlugs(cmd.Context()) {
				fmt.Fprintln(cmd.OutOrStdout(), slug)
			}
			return nil
		},
	}
}

func newSearchCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Interactive incremental search against the live blog",
		Long: "Reads query revisions from stdin line by line, feeding them\n" +
			"through the debounced searcher. An empty line clears the query;\n" +
			"EOF exits.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newBlogService()
			inc := search.New(svc, search.Options{Limit: limit})
			defer inc.Close()

			done := make(chan struct{})
			go func() {
				defer close(done)
				for res := range inc.Results() {
					if res.Idle {
						continue
					}
					if len(res.Posts) == 0 {
						fmt.Fprintf(cmd.OutOrStdout(), "%q: ничего не найдено\n", res.Query)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%q:\n", res.Query)
					for _, p := range res.Posts {
						fmt.Fprintf(cmd.OutOrStdout(), "  /blog/%s  %s (%s)\n", p.Slug, p.Title, p.ReadTime)
					}
				}
			}()

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := scanner.Text()
				if line == "" {
					inc.Clear()
					continue
				}
				inc.Type(line)
			}
			inc.Close()
			<-done
			return scanner.Err()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", search.DefaultLimit, "max results per query")
	return cmd
}

func main() {
	config.InitApp()
	logger.Init(config.GetConfig().Logging.Level)

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
