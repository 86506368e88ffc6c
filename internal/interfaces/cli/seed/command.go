package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tcworld/magadmin/internal/domain/reference"
	"github.com/tcworld/magadmin/internal/infrastructure/mongostore"
	"github.com/tcworld/magadmin/internal/infrastructure/repository"
	seedData "github.com/tcworld/magadmin/internal/infrastructure/seed"
	"github.com/tcworld/magadmin/internal/interfaces/cli/clienv"
)

var (
	env        string
	configPath string
	file       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference registries from a YAML file",
		Long:  `Create categories, types, languages, modes and payment modes listed in a seed file. Records whose id already exists are skipped.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&file, "file", "f", "./configs/seed.yaml", "Path to the seed file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := clienv.Init(env, configPath)
	if err != nil {
		return err
	}

	data, err := seedData.LoadFile(file)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	stores, err := clienv.OpenStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer stores.Close(log)

	var repo reference.Repository
	if stores.DB != nil {
		repo = repository.NewReferenceRepository(stores.DB, log)
	} else {
		repo = mongostore.NewReferenceRepository(stores.Mongo, log)
	}

	res, err := seedData.NewSeeder(repo, log).Apply(ctx, data)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	for _, kind := range reference.Kinds {
		fmt.Printf("  %-14s created %d, skipped %d\n", kind, res.Created[kind], res.Skipped[kind])
	}
	created, skipped := res.Total()
	log.Infow("seed completed", "file", file, "created", created, "skipped", skipped)
	return nil
}
