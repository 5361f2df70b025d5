package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"resumeinsight/resume-analyzer/internal/config"
	"resumeinsight/resume-analyzer/internal/services"
)

// Ingests resume-writing guideline PDFs into the Qdrant collection so the
// general analysis prompt can cite them. Usage:
//
//	go run scripts/ingest_documents.go [dir]
//
// Every .pdf under dir (default ./guideline_docs) is chunked, embedded, and
// upserted with doc type "guideline".
func main() {
	log.Println("🚀 Starting guideline ingestion...")

	dir := "./guideline_docs"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	cfg := config.Load()

	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.EmbedModel,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	qdrantService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := qdrantService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	chunker := services.NewTextChunker()

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatalf("❌ Failed to read directory %s: %v", dir, err)
	}

	ctx := context.Background()
	successCount := 0
	failCount := 0

	for _, entry := range entries {
		if entry.IsDir() || strings.ToLower(filepath.Ext(entry.Name())) != ".pdf" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		log.Printf("\n📄 Processing: %s", entry.Name())

		text, err := pdfParser.ExtractText(path)
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}
		log.Printf("   ✅ Extracted %d characters", len(text))

		chunks := chunker.ChunkText(services.CleanText(text), 1000, 200)
		log.Printf("   ✂️  Created %d chunks", len(chunks))

		stored := 0
		for i, chunk := range chunks {
			embedding, err := geminiService.GenerateEmbedding(ctx, chunk)
			if err != nil {
				log.Printf("   ❌ Failed to embed chunk %d: %v", i+1, err)
				continue
			}

			docID := fmt.Sprintf("%s_chunk_%d", strings.TrimSuffix(entry.Name(), ".pdf"), i)
			if err := qdrantService.UpsertDocument(ctx, docID, services.DocTypeGuideline, chunk, embedding); err != nil {
				log.Printf("   ❌ Failed to store chunk %d: %v", i+1, err)
				continue
			}
			stored++
		}

		log.Printf("   💾 Stored %d/%d chunks", stored, len(chunks))
		successCount++
	}

	log.Printf("\n✅ Ingestion complete: %d documents ingested, %d failed\n", successCount, failCount)
}
