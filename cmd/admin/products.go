package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/safar/go-shop-admin/internal/forms"
	"github.com/safar/go-shop-admin/internal/models"
	"github.com/safar/go-shop-admin/internal/store"
	"github.com/spf13/cobra"
)

func newProductsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage the product catalog",
	}
	cmd.AddCommand(
		newProductsListCmd(a),
		newProductsAddCmd(a),
		newProductsEditCmd(a),
		newProductsRmCmd(a),
		newProductsStockCmd(a),
		newProductsRmImageCmd(a),
	)
	return cmd
}

func newProductsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.NewProducts(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}

			rows := make([][]string, 0, len(st.Items()))
			for _, p := range st.Items() {
				category := "-"
				if p.Category != nil {
					category = p.Category.Name
				}
				active := "no"
				if p.IsActive {
					active = "yes"
				}
				rows = append(rows, []string{
					strconv.FormatInt(p.ID, 10),
					p.Name,
					p.Price.String(),
					strconv.Itoa(p.Stock),
					category,
					active,
					strconv.Itoa(len(p.Images)),
				})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "PRICE", "STOCK", "CATEGORY", "ACTIVE", "IMAGES"}, rows)
			return nil
		},
	}
}

// bindProductFlags registers the scalar product fields shared by add
// and edit.
func bindProductFlags(cmd *cobra.Command, form *forms.ProductForm, discount *float64, stock *int, categoryID, brandID *int64) {
	cmd.Flags().StringVar(&form.Name, "name", form.Name, "product name")
	cmd.Flags().StringVar(&form.Description, "description", form.Description, "product description")
	cmd.Flags().Float64Var(&form.Price, "price", form.Price, "price")
	cmd.Flags().Float64Var(discount, "discount-price", 0, "discounted price")
	cmd.Flags().IntVar(stock, "stock", 0, "stock quantity")
	cmd.Flags().BoolVar(&form.IsActive, "active", form.IsActive, "product is active")
	cmd.Flags().BoolVar(&form.IsFeatured, "featured", form.IsFeatured, "product is featured")
	cmd.Flags().Int64Var(categoryID, "category", 0, "category id")
	cmd.Flags().Int64Var(brandID, "brand", 0, "brand id")
}

func applyProductFlags(cmd *cobra.Command, form *forms.ProductForm, discount *float64, stock *int, categoryID, brandID *int64) {
	if cmd.Flags().Changed("discount-price") {
		form.DiscountPrice = discount
	}
	if cmd.Flags().Changed("stock") {
		form.Stock = stock
	}
	if cmd.Flags().Changed("category") {
		form.CategoryID = categoryID
	}
	if cmd.Flags().Changed("brand") {
		form.BrandID = brandID
	}
}

func attachImages(form *forms.ProductForm, paths []string) error {
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read image %s: %w", path, err)
		}
		if err := form.AddImage(filepath.Base(path), content); err != nil {
			return err
		}
	}
	return nil
}

func newProductsAddCmd(a *app) *cobra.Command {
	form := &forms.ProductForm{}
	form.Reset(nil)
	var (
		discount            float64
		stock               int
		categoryID, brandID int64
		images              []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			applyProductFlags(cmd, form, &discount, &stock, &categoryID, &brandID)
			if err := attachImages(form, images); err != nil {
				return err
			}

			st := store.NewProducts(a.client, a.notifier)
			product, err := st.Create(cmd.Context(), form)
			if err != nil {
				return reportFormErrors(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created product %d\n", product.ID)
			return nil
		},
	}

	bindProductFlags(cmd, form, &discount, &stock, &categoryID, &brandID)
	cmd.Flags().StringSliceVar(&images, "image", nil, "image file to attach (repeatable)")
	return cmd
}

func newProductsEditCmd(a *app) *cobra.Command {
	form := &forms.ProductForm{}
	var (
		discount            float64
		stock               int
		categoryID, brandID int64
		images              []string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			st := store.NewProducts(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}

			var target *models.Product
			if current, ok := st.Find(id); ok {
				target = &current
			}

			dialog := &forms.Dialog[models.Product]{}
			dialog.Open(forms.DialogEdit, target)
			defer func() {
				dialog.Close()
				dialog.AckClosed()
			}()

			flagName, flagDesc, flagPrice := form.Name, form.Description, form.Price
			form.Reset(target)
			if cmd.Flags().Changed("name") {
				form.Name = flagName
			}
			if cmd.Flags().Changed("description") {
				form.Description = flagDesc
			}
			if cmd.Flags().Changed("price") {
				form.Price = flagPrice
			}
			if cmd.Flags().Changed("active") {
				form.IsActive, _ = cmd.Flags().GetBool("active")
			}
			if cmd.Flags().Changed("featured") {
				form.IsFeatured, _ = cmd.Flags().GetBool("featured")
			}
			applyProductFlags(cmd, form, &discount, &stock, &categoryID, &brandID)
			if err := attachImages(form, images); err != nil {
				return err
			}

			product, err := st.Update(cmd.Context(), id, form)
			if err != nil {
				return reportFormErrors(cmd, err)
			}
			if product != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Updated product %d\n", product.ID)
			}
			return nil
		},
	}

	bindProductFlags(cmd, form, &discount, &stock, &categoryID, &brandID)
	cmd.Flags().StringSliceVar(&images, "image", nil, "image file to attach (repeatable)")
	return cmd
}

func newProductsRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			st := store.NewProducts(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}
			return st.Delete(cmd.Context(), id)
		},
	}
}

func newProductsStockCmd(a *app) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "stock <id>",
		Short: "Update only a product's stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			st := store.NewProducts(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}

			product, err := st.UpdateStock(cmd.Context(), id, &forms.StockForm{Quantity: quantity})
			if err != nil {
				return reportFormErrors(cmd, err)
			}
			if product != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Product %d stock is now %d\n", product.ID, product.Stock)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&quantity, "quantity", 0, "new stock quantity")
	cmd.MarkFlagRequired("quantity")
	return cmd
}

func newProductsRmImageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm-image <id> <index>",
		Short: "Remove one image from a product by index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid image index %q", args[1])
			}

			st := store.NewProducts(a.client, a.notifier)
			if err := st.Load(cmd.Context()); err != nil {
				return err
			}
			return st.DeleteImage(cmd.Context(), id, index)
		},
	}
}
