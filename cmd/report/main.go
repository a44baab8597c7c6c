// Command report processa uma planilha de vendas local e imprime o painel em JSON
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/allansduarte/placas-mundi-vendas/internal/domain"
	"github.com/allansduarte/placas-mundi-vendas/internal/usecases/aggregating"
	"github.com/allansduarte/placas-mundi-vendas/internal/usecases/ingesting"
	"github.com/allansduarte/placas-mundi-vendas/pkg/log"
	"github.com/allansduarte/placas-mundi-vendas/pkg/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("report", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	opts := aggregating.DefaultOptions()
	flags.IntVar(&opts.TopN, "top-n", opts.TopN, "quantidade de linhas nos rankings de UFs, clientes e consultores")
	flags.IntVar(&opts.TrendTop, "trend-top", opts.TrendTop, "quantidade de consultores na série mensal")
	logLevel := flags.String("log-level", "warn", "nível de log")

	flags.Usage = func() {
		fmt.Fprintln(stderr, "uso: report [opções] <arquivo.csv|arquivo.xlsx>")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}

	log.Configure(*logLevel)
	logrus.SetOutput(stderr)

	path := flags.Arg(0)
	dashboard, err := buildReport(path, opts)
	if err != nil {
		fmt.Fprintf(stderr, "erro: %v\n", err)
		return 1
	}

	if dashboard.Empty {
		fmt.Fprintf(stderr, "aviso: %s\n", aggregating.WarningEmptyResult)
	}

	fmt.Fprintln(stdout, utils.PrettyJson(dashboard))
	return 0
}

func buildReport(path string, opts aggregating.Options) (*domain.Dashboard, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir arquivo")
	}
	defer file.Close()

	result, err := ingesting.NewService().Ingest(file, filepath.Base(path))
	if err != nil {
		return nil, err
	}

	return aggregating.BuildDashboard(result, opts), nil
}
