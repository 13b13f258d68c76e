package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Input  Input  `mapstructure:",squash"`
	Output Output `mapstructure:",squash"`
	Report Report `mapstructure:",squash"`
	Chart  Chart  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Input contém os caminhos dos quatro arquivos CSV de entrada
type Input struct {
	OrdersPath            string `mapstructure:"orders_path"`
	ReturnsPath           string `mapstructure:"returns_path"`
	SponsoredProductsPath string `mapstructure:"sponsored_products_path"`
	SkuMetricsPath        string `mapstructure:"sku_metrics_path"`
}

type Output struct {
	DashboardPath string `mapstructure:"dashboard_path"`
}

type Report struct {
	Format               string `mapstructure:"report_format"`
	UnknownSKU           string `mapstructure:"unknown_sku"`
	UndefinedPlaceholder string `mapstructure:"undefined_placeholder"`
}

type Chart struct {
	WidthInches           float64 `mapstructure:"chart_width_inches"`
	HeightInches          float64 `mapstructure:"chart_height_inches"`
	DPI                   int     `mapstructure:"chart_dpi"`
	Show                  bool    `mapstructure:"chart_show"`
	AdSpendHighlightAbove float64 `mapstructure:"ad_spend_highlight_threshold"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("ORDERS_PATH", "outputs/cleaned/orders.csv")
	viper.SetDefault("RETURNS_PATH", "outputs/cleaned/returns.csv")
	viper.SetDefault("SPONSORED_PRODUCTS_PATH", "outputs/cleaned/sponsored_products.csv")
	viper.SetDefault("SKU_METRICS_PATH", "outputs/cleaned/sku_metrics.csv")

	viper.SetDefault("DASHBOARD_PATH", "outputs/analysis_dashboard.png")

	viper.SetDefault("REPORT_FORMAT", FormatText)
	viper.SetDefault("UNKNOWN_SKU", "UNKNOWN")       // SKU sentinela descartado antes da agregação
	viper.SetDefault("UNDEFINED_PLACEHOLDER", "N/A") // Exibido quando a venda bruta é zero

	viper.SetDefault("AD_SPEND_HIGHLIGHT_THRESHOLD", 2000) // Barras acima deste gasto ficam vermelhas
	viper.SetDefault("CHART_WIDTH_INCHES", 16)
	viper.SetDefault("CHART_HEIGHT_INCHES", 6)
	viper.SetDefault("CHART_DPI", 300)
	viper.SetDefault("CHART_SHOW", true)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica valores que tornariam a execução impossível
func (c *Config) Validate() error {
	switch c.Report.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("config: formato de relatório inválido %q (use %q ou %q)", c.Report.Format, FormatText, FormatJSON)
	}

	if c.Chart.WidthInches <= 0 || c.Chart.HeightInches <= 0 {
		return fmt.Errorf("config: dimensões do gráfico devem ser positivas (%.2fx%.2f)", c.Chart.WidthInches, c.Chart.HeightInches)
	}

	if c.Chart.DPI <= 0 {
		return fmt.Errorf("config: dpi do gráfico deve ser positivo (%d)", c.Chart.DPI)
	}

	if c.Output.DashboardPath == "" {
		return fmt.Errorf("config: caminho do dashboard não pode ser vazio")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de: ", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente e padrões")
}
