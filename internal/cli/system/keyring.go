package system

import (
	"fmt"

	"github.com/suhani1709/studyflow/internal/cli"
	"github.com/suhani1709/studyflow/internal/keyring"
)

type ConfigCmd struct {
	SetConnection    ConfigSetConnectionCmd    `cmd:"" name:"set-connection" help:"Store a PostgreSQL connection string in the OS keyring."`
	DeleteConnection ConfigDeleteConnectionCmd `cmd:"" name:"delete-connection" help:"Remove the stored connection string from the OS keyring."`
}

type ConfigSetConnectionCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string (may include credentials; it is stored in the keyring, never on disk)."`
}

func (c *ConfigSetConnectionCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
		return err
	}
	fmt.Println("Connection string stored in OS keyring.")
	return nil
}

type ConfigDeleteConnectionCmd struct{}

func (c *ConfigDeleteConnectionCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if err == keyring.ErrNotFound {
			fmt.Println("No connection string stored.")
			return nil
		}
		return err
	}
	fmt.Println("Connection string removed from OS keyring.")
	return nil
}
