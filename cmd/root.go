package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.0.2"
)

var rootCmd = &cobra.Command{
	Use:     "rushmore",
	Short:   "RushMore Pizzeria database tooling",
	Version: Version,
	Long: `Tooling for the RushMore Pizzeria enterprise database.

The populate command synthesizes a referentially-consistent dataset
(stores, ingredients, menu items, customers, orders) and loads it into
PostgreSQL under transactional guarantees.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./rushmore.config.yaml)")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("rushmore.config")
	}

	viper.AutomaticEnv()

	// Missing config files surface later as missing required parameters.
	viper.ReadInConfig()
}
