package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seagrayinc/oledcfg/internal/config"
	"github.com/seagrayinc/oledcfg/internal/logging"
	"github.com/seagrayinc/oledcfg/internal/version"
	"github.com/seagrayinc/oledcfg/pkg/hid"
	"github.com/seagrayinc/oledcfg/pkg/oled"
	"github.com/seagrayinc/oledcfg/pkg/via"
)

var (
	flagLogLevel string
	flagCatalog  string
	flagKeyboard string
	flagPanel    string
)

var rootCmd = &cobra.Command{
	Use:   "oledcfg",
	Short: "OLED panel configurator for VIA keyboards",
	Long: `Oledcfg sends monochrome bitmaps to the auxiliary OLED panels of a
split keyboard over its VIA raw HID interface.

The keyboard's USB identity and panel geometry come from a YAML device
catalog; a built-in entry covers the Lily58.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(flagLogLevel)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "",
		"log verbosity (debug, info, warn, error); silent when unset")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "",
		"path to the device catalog file")
	rootCmd.PersistentFlags().StringVar(&flagKeyboard, "keyboard", "lily58",
		"catalog entry to use")

	sendCmd.Flags().StringVar(&flagPanel, "panel", "left", "target panel (left or right)")

	rootCmd.AddCommand(discoverCmd, probeCmd, sendCmd, versionCmd)
}

func loadCatalog() (*config.Catalog, error) {
	if flagCatalog != "" {
		return config.LoadFile(flagCatalog)
	}
	return config.Load()
}

func catalogKeyboard() (*config.Keyboard, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return catalog.Keyboard(flagKeyboard)
}

// openKeyboard runs discovery for the selected catalog entry and hands back
// the keyboard with its transport open. The caller closes it.
func openKeyboard() (*via.Keyboard, *config.Keyboard, error) {
	kb, err := catalogKeyboard()
	if err != nil {
		return nil, nil, err
	}
	mgr, err := hid.NewManager()
	if err != nil {
		return nil, nil, err
	}
	k, err := via.Discover(mgr, via.Identity{VendorID: kb.VendorID, ProductID: kb.ProductID})
	if err != nil {
		return nil, nil, err
	}
	return k, kb, nil
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find the keyboard and print its protocol version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		k, _, err := openKeyboard()
		if err != nil {
			return err
		}
		defer k.Close()

		fmt.Printf("%s %s\n", k.Info.Manufacturer, k.Info.Product)
		fmt.Printf("path: %s\n", k.Info.Path)
		fmt.Printf("protocol version: %d\n", k.ProtocolVersion)
		return nil
	},
}

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Probe every matching HID interface",
	Long: `Probe lists every HID interface enumerating under the keyboard's USB
identity and whether it answers the VIA version handshake. A split keyboard
exposes several interfaces; only the raw configuration interface answers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kb, err := catalogKeyboard()
		if err != nil {
			return err
		}
		mgr, err := hid.NewManager()
		if err != nil {
			return err
		}

		id := via.Identity{VendorID: kb.VendorID, ProductID: kb.ProductID}
		infos, err := mgr.List(id.VendorID, id.ProductID)
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			return fmt.Errorf("no HID devices match %s", id)
		}

		for _, info := range infos {
			dev, err := mgr.Open(info)
			if err != nil {
				fmt.Printf("%s: open failed: %v\n", info.Path, err)
				continue
			}
			t := via.NewTransport(dev)
			if ver, ok := t.ProtocolVersion(); ok {
				fmt.Printf("%s: VIA protocol %d\n", info.Path, ver)
			} else {
				fmt.Printf("%s: no VIA handshake\n", info.Path)
			}
			t.Close()
		}
		return nil
	},
}

var sendCmd = &cobra.Command{
	Use:   "send [image file]",
	Short: "Send a monochrome image to a panel",
	Long: `Send loads an image file, thresholds it to one bit per pixel, and
transfers it to the selected panel. The image must already match the panel's
pixel geometry; rotation and resampling belong to whatever produced it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, err := oled.ParsePanel(flagPanel)
		if err != nil {
			return err
		}

		k, kb, err := openKeyboard()
		if err != nil {
			return err
		}
		defer k.Close()

		pcfg, err := kb.Panel(panel.String())
		if err != nil {
			return err
		}
		geom := oled.Geometry{Width: pcfg.Width, Height: pcfg.Height}

		bmp, err := loadBitmap(args[0], geom)
		if err != nil {
			return err
		}

		state := oled.NewPanelState(panel, geom)
		if err := state.Apply(oled.NewSession(k.Transport), bmp); err != nil {
			return err
		}
		fmt.Printf("sent %s to the %s panel\n", filepath.Base(args[0]), panel)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("oledcfg %s\n", version.Full())
	},
}
