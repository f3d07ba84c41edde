// Command backfill recomputes derived amounts for every stored document.
// Useful after a calculation change so old rows carry the same derived
// fields new saves would get.
// Usage: go run ./cmd/backfill
package main

import (
	"context"
	"fmt"
	"log"

	"billkit/internal/config"
	"billkit/internal/gstcalc"
	"billkit/internal/repository/postgres"
)

const batchSize = 100

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	docRepo := postgres.NewDocumentRepo(db)

	ctx := context.Background()
	offset := 0
	total := 0

	for {
		docs, err := docRepo.ListAll(ctx, offset, batchSize)
		if err != nil {
			return fmt.Errorf("listing documents at offset %d: %w", offset, err)
		}
		if len(docs) == 0 {
			break
		}

		for i := range docs {
			doc := &docs[i]

			for j := range doc.Items {
				item := &doc.Items[j]
				gstcalc.CalculateLineItem(item.Quantity, item.Rate, item.GSTRate, doc.IsInterState).ApplyTo(item)
			}
			gstcalc.CalculateTotals(doc.Items, doc.DiscountType, doc.DiscountValue, doc.ShippingCharges).ApplyTo(doc)

			if err := docRepo.Update(ctx, doc); err != nil {
				log.Printf("WARN: failed to update document %s: %v", doc.ID, err)
				continue
			}
			total++
		}

		if total > 0 && total%batchSize == 0 {
			log.Printf("Progress: %d documents processed", total)
		}

		offset += len(docs)
	}

	log.Printf("Backfill complete: %d documents recomputed", total)
	return nil
}
