package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"iskele/pkg/container"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

const (
	defaultServerURL = "http://localhost:8080"
	iskeleBanner     = `
██╗███████╗██╗  ██╗███████╗██╗     ███████╗
██║██╔════╝██║ ██╔╝██╔════╝██║     ██╔════╝
██║███████╗█████╔╝ █████╗  ██║     █████╗
██║╚════██║██╔═██╗ ██╔══╝  ██║     ██╔══╝
██║███████║██║  ██║███████╗███████╗███████╗
╚═╝╚══════╝╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝

Container Lifecycle CLI v1.0.0
`
)

var (
	serverURL string
	rootCmd   = &cobra.Command{
		Use:   "iskele",
		Short: "⚓ İSKELE Konteyner Yaşam Döngüsü CLI",
		Long: iskeleBanner + `
İSKELE, Docker konteynerlerinin yaşam döngüsünü tek bir HTTP servisi
üzerinden yönetmek için geliştirilmiş basit ve güçlü bir araçtır.

Kullanım örnekleri:
  iskele run alpine                 # alpine:latest konteyneri oluştur ve başlat
  iskele run nginx -p 8081:80      # port eşlemeli nginx başlat
  iskele containers                 # Yönetilen konteynerleri listele
  iskele status my-container        # Konteyner durumunu göster

Daha fazla bilgi için: iskele [komut] --help`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Banner'ı sadece help ve version dışındaki komutlarda göster
			if cmd.Name() != "help" && cmd.Name() != "version" && !cmd.HasParent() {
				fmt.Print(iskeleBanner)
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServerURL, "İskele sunucu URL'si")

	// Container commands
	rootCmd.AddCommand(runContainerCmd)
	rootCmd.AddCommand(listContainersCmd)
	rootCmd.AddCommand(statusContainerCmd)
	rootCmd.AddCommand(stopContainerCmd)
	rootCmd.AddCommand(removeContainerCmd)
	rootCmd.AddCommand(logsContainerCmd)

	// Utility commands
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("❌ Hata: %v\n", err)
		os.Exit(1)
	}
}

// Container commands
var runContainerCmd = &cobra.Command{
	Use:   "run [image]",
	Short: "🚀 Yeni bir konteyner oluştur ve başlat",
	Long: `Belirtilen image'dan yeni bir konteyner oluşturur ve başlatır.
Image lokalde yoksa sunucu tarafından otomatik olarak pull edilir.
Tag verilmezse latest kullanılır.

Örnek kullanım:
  iskele run alpine
  iskele run nginx:1.25 -p 8081:80
  iskele run postgres -e POSTGRES_PASSWORD=gizli -p 5433:5432`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		image := args[0]
		envFlags, _ := cmd.Flags().GetStringArray("env")
		portFlags, _ := cmd.Flags().GetStringArray("port")

		envVars, err := parseEnvFlags(envFlags)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		ports, err := parsePortFlags(portFlags)
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			os.Exit(1)
		}

		req := container.CreateRequest{
			ImageName:    image,
			EnvVariables: envVars,
			Ports:        ports,
		}

		fmt.Printf("🚀 Konteyner oluşturuluyor: %s\n", image)

		sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		sp.Suffix = " Image çözümleniyor, gerekirse pull ediliyor..."
		sp.Start()
		resp, err := createContainer(req)
		sp.Stop()

		if err != nil {
			fmt.Printf("❌ Konteyner oluşturulamadı: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ %s\n", resp.Message)
		fmt.Printf("   📋 ID: %s\n", resp.ContainerID)
		fmt.Printf("   🏷️  İsim: %s\n", resp.ContainerName)
	},
}

var listContainersCmd = &cobra.Command{
	Use:     "containers",
	Aliases: []string{"ps", "list"},
	Short:   "📋 Yönetilen konteynerleri listele",
	Long: `Bu servis tarafından yönetilen tüm konteynerleri listeler.
Durmuş konteynerler de listeye dahildir.

Örnek kullanım:
  iskele containers
  iskele ps
  iskele list`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("🔍 Konteynerler getiriliyor...")
		containers, err := listContainers()
		if err != nil {
			fmt.Printf("❌ Konteyner listesi alınamadı: %v\n", err)
			os.Exit(1)
		}

		if len(containers) == 0 {
			fmt.Println("📭 Yönetilen konteyner bulunamadı.")
			return
		}

		fmt.Printf("\n📦 Toplam %d konteyner bulundu:\n\n", len(containers))

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tİSİM\tIMAGE\tDURUM\tDETAY")
		fmt.Fprintln(w, strings.Repeat("─", 80))

		for _, c := range containers {
			name := ""
			if len(c.Names) > 0 {
				name = strings.TrimPrefix(c.Names[0], "/")
			}

			state := c.State
			switch state {
			case "running":
				state = "🟢 " + state
			case "exited":
				state = "🔴 " + state
			case "created":
				state = "🟡 " + state
			default:
				state = "⚪ " + state
			}

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				truncateString(c.ID, 12), name, c.Image, state, c.Status)
		}
		w.Flush()
	},
}

var statusContainerCmd = &cobra.Command{
	Use:   "status [container-ref]",
	Short: "🔍 Konteyner durumunu görüntüle",
	Long: `Belirtilen konteyner adı veya ID'si ile konteynerin güncel
durumunu görüntüler. Durmuş konteynerler de sorgulanabilir.

Örnek kullanım:
  iskele status container-alpine-latest-4f2a...
  iskele status 1a2b3c4d`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ref := args[0]

		fmt.Printf("🔍 Konteyner durumu getiriliyor: %s\n", ref)
		status, err := getStatus(ref)
		if err != nil {
			fmt.Printf("❌ Konteyner durumu alınamadı: %v\n", err)
			os.Exit(1)
		}

		names := make([]string, 0, len(status.ContainerName))
		for _, n := range status.ContainerName {
			names = append(names, strings.TrimPrefix(n, "/"))
		}

		fmt.Printf("\n📋 Konteyner Durumu:\n")
		fmt.Printf("═══════════════════════════════════════\n")
		fmt.Printf("🏷️  İsim: %s\n", strings.Join(names, ", "))
		fmt.Printf("📋 ID: %s\n", status.ContainerID)
		fmt.Printf("🖼️  Image: %s\n", status.Image)
		fmt.Printf("📊 Durum: %s\n", status.State)
		fmt.Printf("ℹ️  Detay: %s\n", status.Status)
	},
}

var stopContainerCmd = &cobra.Command{
	Use:   "stop [container-ref]",
	Short: "⏹️  Konteyneri durdur",
	Long: `Belirtilen konteyner adı veya ID'si ile konteyneri durdurur.

Örnek kullanım:
  iskele stop container-alpine-latest-4f2a...
  iskele stop 1a2b3c4d`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ref := args[0]

		fmt.Printf("⏹️  Konteyner durduruluyor: %s\n", ref)
		if err := stopContainer(ref); err != nil {
			fmt.Printf("❌ Konteyner durdurulamadı: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Konteyner başarıyla durduruldu: %s\n", ref)
	},
}

var removeContainerCmd = &cobra.Command{
	Use:     "remove [container-ref]",
	Aliases: []string{"rm", "delete"},
	Short:   "🗑️  Konteyneri sil",
	Long: `Belirtilen konteyner adı veya ID'si ile konteyneri zorla siler.
Çalışan konteynerler önce durdurulur, sonra kaldırılır.

Örnek kullanım:
  iskele remove container-alpine-latest-4f2a...
  iskele rm 1a2b3c4d
  iskele delete eski-konteyner`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ref := args[0]

		fmt.Printf("🗑️  Konteyner siliniyor: %s\n", ref)
		if err := removeContainer(ref); err != nil {
			fmt.Printf("❌ Konteyner silinemedi: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Konteyner başarıyla silindi: %s\n", ref)
	},
}

var logsContainerCmd = &cobra.Command{
	Use:   "logs [container-ref]",
	Short: "📜 Konteyner loglarını görüntüle",
	Long: `Belirtilen konteyner adı veya ID'si ile konteyner loglarını görüntüler.

Örnek kullanım:
  iskele logs container-alpine-latest-4f2a...
  iskele logs 1a2b3c4d --tail 50`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ref := args[0]
		tail, _ := cmd.Flags().GetInt("tail")

		fmt.Printf("📜 Konteyner logları getiriliyor: %s (son %d satır)\n", ref, tail)
		logs, err := getContainerLogs(ref, tail)
		if err != nil {
			fmt.Printf("❌ Konteyner logları alınamadı: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("\n📋 Konteyner Logları:\n")
		fmt.Printf("═══════════════════════════════════════\n")
		fmt.Print(logs)
	},
}

// Utility commands
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "📊 Sistem istatistiklerini göster",
	Long: `Yönetilen konteyner popülasyonunun özetini görüntüler.

Örnek kullanım:
  iskele stats`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("📊 Sistem istatistikleri getiriliyor...")
		stats, err := getStats()
		if err != nil {
			fmt.Printf("❌ İstatistikler alınamadı: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("\n⚓ İSKELE Sistem İstatistikleri:\n")
		fmt.Printf("═══════════════════════════════════════\n")
		fmt.Printf("📦 Konteynerler: %d toplam, %d çalışıyor\n",
			stats.TotalContainers, stats.RunningContainers)

		if stats.TotalContainers > 0 {
			stopped := stats.TotalContainers - stats.RunningContainers
			fmt.Printf("   🟢 Çalışan: %d\n", stats.RunningContainers)
			fmt.Printf("   🔴 Durmuş: %d\n", stopped)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "ℹ️  Sürüm bilgilerini göster",
	Long: `İskele CLI ve sistem sürüm bilgilerini görüntüler.

Örnek kullanım:
  iskele version`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(iskeleBanner)
		fmt.Printf("\n📋 Sürüm Bilgileri:\n")
		fmt.Printf("═══════════════════════════════════════\n")
		fmt.Printf("⚓ İskele CLI: v1.0.0\n")
		fmt.Printf("🔧 Go Runtime: %s\n", "go1.21+")
		fmt.Printf("🏗️  Build: Production\n")
		fmt.Printf("\n💡 Daha fazla bilgi için: iskele --help\n")
	},
}

func init() {
	runContainerCmd.Flags().StringArrayP("env", "e", nil, "Ortam değişkeni (KEY=VALUE, tekrarlanabilir)")
	runContainerCmd.Flags().StringArrayP("port", "p", nil, "Port eşlemesi (HOST:CONTAINER, tekrarlanabilir)")
	logsContainerCmd.Flags().Int("tail", 100, "Number of lines to show from the end of the logs")
}

// parseEnvFlags turns repeated KEY=VALUE flags into the request map.
func parseEnvFlags(flags []string) (map[string]string, error) {
	if len(flags) == 0 {
		return nil, nil
	}

	envVars := make(map[string]string, len(flags))
	for _, raw := range flags {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("geçersiz env tanımı: %s (KEY=VALUE bekleniyor)", raw)
		}
		envVars[parts[0]] = parts[1]
	}

	return envVars, nil
}

// parsePortFlags turns repeated HOST:CONTAINER flags into the request map,
// keyed by container port. A single port maps to itself.
func parsePortFlags(flags []string) (map[string]string, error) {
	if len(flags) == 0 {
		return nil, nil
	}

	ports := make(map[string]string, len(flags))
	for _, raw := range flags {
		parts := strings.Split(raw, ":")
		switch len(parts) {
		case 1:
			ports[parts[0]] = parts[0]
		case 2:
			ports[parts[1]] = parts[0]
		default:
			return nil, fmt.Errorf("geçersiz port tanımı: %s (HOST:CONTAINER bekleniyor)", raw)
		}
	}

	return ports, nil
}
