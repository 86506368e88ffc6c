package admin

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	adminUsecases "github.com/tcworld/magadmin/internal/application/admin/usecases"
	adminDomain "github.com/tcworld/magadmin/internal/domain/admin"
	"github.com/tcworld/magadmin/internal/infrastructure/auth"
	"github.com/tcworld/magadmin/internal/infrastructure/mongostore"
	"github.com/tcworld/magadmin/internal/infrastructure/repository"
	"github.com/tcworld/magadmin/internal/interfaces/cli/clienv"
	"github.com/tcworld/magadmin/internal/shared/constants"
	"github.com/tcworld/magadmin/internal/shared/errors"
)

var (
	env        string
	configPath string
	username   string
	email      string
	firstName  string
	lastName   string
	role       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin account tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newCreateCommand())
	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		Long:  `Create an admin account. The password is read from the terminal without echo, or from stdin when it is not a terminal.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Login name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&role, "role", constants.RoleAdmin, "Role (admin or staff)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Print("Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Print("Password (again): ")
	second, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if string(first) != string(second) {
		return "", fmt.Errorf("passwords do not match")
	}
	return string(first), nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, log, err := clienv.Init(env, configPath)
	if err != nil {
		return err
	}

	password, err := readPassword()
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

	var repo adminDomain.Repository
	if stores.DB != nil {
		repo = repository.NewAdminUserRepository(stores.DB, log)
	} else {
		repo = mongostore.NewAdminUserRepository(stores.Mongo, log)
	}

	uc := adminUsecases.NewSignupUseCase(repo, auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost), log)
	user, err := uc.Execute(ctx, adminUsecases.SignupCommand{
		Username:  username,
		Password:  password,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
	})
	if err != nil {
		if verrs := errors.GetValidationErrors(err); verrs != nil {
			for field, msgs := range verrs.Fields() {
				fmt.Printf("  %s: %s\n", field, strings.Join(msgs, " "))
			}
		}
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	fmt.Printf("Admin account %q created (id %s, role %s)\n", user.Username, user.ID, user.Role)
	return nil
}
