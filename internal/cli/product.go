package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hemshop/storefront/internal/catalog"
	"github.com/hemshop/storefront/internal/dataurl"
	"github.com/hemshop/storefront/internal/model"
	"github.com/hemshop/storefront/internal/shop"
)

// ProductOptions holds flags shared by the product subcommands.
type ProductOptions struct {
	*RootOptions
	Password string
	Yes      bool

	Name      string
	Price     float64
	Category  string
	Stock     int
	Material  string
	Sizes     string
	Colors    string
	Image     string
	ImageFile string
	Latest    bool
}

// NewProductCommand creates the product command with its add/edit/rm
// subcommands. All three are admin operations: they log in with the supplied
// password and ask for confirmation before touching the catalog.
func NewProductCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Admin product management",
	}
	cmd.AddCommand(newProductAddCommand(rootOpts))
	cmd.AddCommand(newProductEditCommand(rootOpts))
	cmd.AddCommand(newProductRemoveCommand(rootOpts))
	return cmd
}

func newProductAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProductOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to the catalog",
		Long: `Add a product. Requires the admin password and a confirmation.

Example:
  storefront product add --name "Acid Windbreaker" --price 95 \
    --category Hoodies --sizes "M, L, XL" --colors "Acid, Black" \
    --stock 12 --material Nylon --password G-pace2026 --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openAdmin(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			draft, err := opts.draft()
			if err != nil {
				return err
			}
			p, err := s.Catalog().Create(draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created product %d: %s\n", p.ID, p.Name)
			return nil
		},
	}
	opts.bindDraftFlags(cmd)
	return cmd
}

func newProductEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProductOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a product's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			s, err := openAdmin(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			draft, err := opts.draft()
			if err != nil {
				return err
			}
			p, err := s.Catalog().Update(id, draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated product %d: %s\n", p.ID, p.Name)
			return nil
		},
	}
	opts.bindDraftFlags(cmd)
	return cmd
}

func newProductRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProductOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a product from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			s, err := openAdmin(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Catalog().Delete(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted product %d\n", id)
			return nil
		},
	}
	opts.bindAdminFlags(cmd)
	return cmd
}

func (o *ProductOptions) bindAdminFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.Password, "password", "", "admin password (prompted when omitted)")
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false, "confirm without prompting")
}

func (o *ProductOptions) bindDraftFlags(cmd *cobra.Command) {
	o.bindAdminFlags(cmd)
	cmd.Flags().StringVar(&o.Name, "name", "", "product name")
	cmd.Flags().Float64Var(&o.Price, "price", 0, "price in USD")
	cmd.Flags().StringVar(&o.Category, "category", "Hoodies", "category ("+strings.Join(model.Categories, "|")+")")
	cmd.Flags().IntVar(&o.Stock, "stock", 0, "units in stock")
	cmd.Flags().StringVar(&o.Material, "material", "Cotton", "material")
	cmd.Flags().StringVar(&o.Sizes, "sizes", "S, M, L, XL", "comma-separated sizes")
	cmd.Flags().StringVar(&o.Colors, "colors", "Black, White", "comma-separated colors")
	cmd.Flags().StringVar(&o.Image, "image", "", "image URL or data URI")
	cmd.Flags().StringVar(&o.ImageFile, "image-file", "", "image file to embed as a data URI")
	cmd.Flags().BoolVar(&o.Latest, "latest", false, "mark as a latest drop")
	_ = cmd.MarkFlagRequired("name")
}

// draft assembles the product draft from flags, embedding --image-file when
// given.
func (o *ProductOptions) draft() (model.Draft, error) {
	image := o.Image
	if o.ImageFile != "" {
		uri, err := dataurl.FromFile(o.ImageFile)
		if err != nil {
			return model.Draft{}, err
		}
		image = uri
	}
	return model.Draft{
		Name:        o.Name,
		Price:       o.Price,
		Category:    o.Category,
		Stock:       o.Stock,
		Material:    o.Material,
		Image:       image,
		IsLatest:    o.Latest,
		SizesInput:  o.Sizes,
		ColorsInput: o.Colors,
	}, nil
}

// openAdmin opens the shop with a terminal confirmer and logs the admin in.
// One buffered reader serves every prompt of the run, so a second prompt
// never loses input buffered by the first.
func openAdmin(opts *ProductOptions, cmd *cobra.Command) (*shop.Shop, error) {
	in := bufio.NewReader(cmd.InOrStdin())
	confirm := terminalConfirmer(cmd, in, opts.Yes)
	s, err := openShop(opts.RootOptions, confirm)
	if err != nil {
		return nil, err
	}
	password := opts.Password
	if password == "" {
		password, err = promptLine(cmd, in, "Admin password: ")
		if err != nil {
			s.Close()
			return nil, err
		}
	}
	if err := s.Gate().Login(password); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// terminalConfirmer asks on the command's streams; --yes approves everything.
func terminalConfirmer(cmd *cobra.Command, in *bufio.Reader, assumeYes bool) catalog.ConfirmFunc {
	if assumeYes {
		return catalog.ConfirmAll
	}
	return func(intent string) bool {
		answer, err := promptLine(cmd, in, "Are you sure you want to "+intent+"? [y/N] ")
		if err != nil {
			return false
		}
		answer = strings.ToLower(answer)
		return answer == "y" || answer == "yes"
	}
}

func promptLine(cmd *cobra.Command, in *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
