package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mvinis/monitoramento-precos-magalu/internal/app"
	"github.com/mvinis/monitoramento-precos-magalu/internal/builder"
	"github.com/mvinis/monitoramento-precos-magalu/internal/classifier"
	"github.com/mvinis/monitoramento-precos-magalu/internal/config"
	"github.com/mvinis/monitoramento-precos-magalu/internal/logger"
)

// Ferramenta de depuração das regras de categoria.
// go run cmd/classify/main.go -no-ai "Capa para iPhone 15" "iPhone 15 com capa"
// cat titulos.txt | go run cmd/classify/main.go -explain
func main() {
	noAI := flag.Bool("no-ai", false, "Desativa o classificador semântico")
	explain := flag.Bool("explain", false, "Mostra regra e posições usadas")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	// sem arquivo de log: a saída é para o terminal
	if _, err := logger.Setup(cfg.Env, ""); err != nil {
		fmt.Fprintf(os.Stderr, "failed to setup logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	resolver, closeResolver := app.NewResolver(ctx, cfg, !*noAI)
	defer closeResolver()

	titles := flag.Args()
	if len(titles) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				titles = append(titles, line)
			}
		}
		if err := scanner.Err(); err != nil {
			log.Fatal().Err(err).Msg("Erro ao ler stdin")
		}
	}

	for _, title := range titles {
		res := resolver.Explain(ctx, title)
		decision := classifier.Bundle(title)
		categoria := builder.ComposeCategory(res.Label, decision)

		if *explain {
			fmt.Printf("%s\t%s\tbundle=%t\tregra=%s\tposAcc=%d\tposHw=%d\thw=%s\n",
				title, categoria, decision.IsBundle, res.Rule, res.PosAcc, res.PosHw, res.Hardware)
			continue
		}
		fmt.Printf("%s\t%s\tbundle=%t\n", title, categoria, decision.IsBundle)
	}
}
