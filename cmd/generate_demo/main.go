// Command generate_demo creates a demo database with a couple of sample
// reading lists, seeded through the real import pipeline.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/holasocioit-bit/visual-info/internal/database"
	"github.com/holasocioit-bit/visual-info/internal/database/papers"
	"github.com/holasocioit-bit/visual-info/internal/identity"
	"github.com/holasocioit-bit/visual-info/internal/importers"
)

const defaultDemoDatabasePath = "./demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	repo := papers.NewRepository(db.DB)
	pipeline := importers.NewPipeline(repo, identity.NewGenerator())

	for _, shelf := range demoShelves() {
		result, err := pipeline.Import(importers.NewPasteConverter(shelf.paste), shelf.name)
		if err != nil {
			log.Printf("Failed to import %q: %v", shelf.name, err)
			continue
		}
		log.Printf("Saved: %s (%d papers)", result.GroupName, result.PapersImported)
	}

	log.Println("Demo database generated successfully!")
}

type demoShelf struct {
	name  string
	paste string
}

// demoShelves returns sample pastes in the shapes the pipeline accepts:
// a plain array, an envelope, and a relaxed-syntax blob.
func demoShelves() []demoShelf {
	return []demoShelf{
		{
			name: "Transformers",
			paste: `[
				{
					"Título": "Attention Is All You Need",
					"Año": 2017,
					"Etiquetas": ["transformers", "nlp"],
					"Resumen": "Introduces the transformer, an architecture built entirely on attention.",
					"Contribución": "Self-attention replaces recurrence and convolution for sequence modeling.",
					"url": "https://arxiv.org/abs/1706.03762"
				},
				{
					"Título": "BERT: Pre-training of Deep Bidirectional Transformers",
					"Año": 2018,
					"Etiquetas": ["transformers", "pretraining"],
					"Resumen": "Bidirectional pretraining with masked language modeling. See arXiv:1810.04805 and github.com/google-research/bert for the reference code.",
					"Contribución": "One pretrained model fine-tunes to many tasks."
				}
			]`,
		},
		{
			name: "Vision",
			paste: `{
				"data": [
					{
						"Título": "Deep Residual Learning for Image Recognition",
						"Año": 2015,
						"Etiquetas": ["vision", "cnn"],
						"Resumen": "Residual connections make very deep networks trainable.",
						"url": "arxiv.org/abs/1512.03385"
					},
					{
						"Título": "An Image is Worth 16x16 Words",
						"Año": 2020,
						"Etiquetas": ["vision", "transformers"],
						"Resumen": "Applies a plain transformer to image patches at scale."
					}
				]
			}`,
		},
		{
			name: "Relaxed export",
			paste: `[
				{
					Título: 'Generative Adversarial Networks',
					Año: 2014,
					Etiquetas: ['generative', 'gan'],
					Resumen: 'Two networks trained against each other, a generator and a discriminator.',
				},
			]`,
		},
	}
}
