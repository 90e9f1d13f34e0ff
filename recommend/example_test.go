package recommend_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bookgraph/affinity"
	"github.com/katalvlaran/bookgraph/library"
	"github.com/katalvlaran/bookgraph/recommend"
)

// ExampleEngine_Recommend ranks books for a reader who loved Harry Potter 1
// and is connected to one friend.
func ExampleEngine_Recommend() {
	cat := library.NewCatalog()
	_, _ = cat.AddReader(library.ReaderInfo{Username: "lector"})
	_, _ = cat.AddReader(library.ReaderInfo{Username: "amiga"})
	_, _ = cat.AddBook(library.BookInfo{ID: "hp1", Title: "Harry Potter 1", Author: "J.K. Rowling", Year: 1997, Category: "Fantasía"})
	_, _ = cat.AddBook(library.BookInfo{ID: "hp2", Title: "Harry Potter 2", Author: "J.K. Rowling", Year: 1998, Category: "Fantasía"})
	_, _ = cat.AddBook(library.BookInfo{ID: "1984", Title: "1984", Author: "George Orwell", Year: 1949, Category: "Distopía"})

	_ = cat.Lend("lector", "hp1")
	_, _ = cat.Rate("lector", "hp1", 5, "")
	_ = cat.Connect("lector", "amiga")
	_, _ = cat.Rate("amiga", "hp2", 5, "")
	_, _ = cat.Rate("amiga", "1984", 4, "")

	builder, _ := affinity.NewBuilder()
	engine, _ := recommend.NewEngine(affinity.NewNetwork(cat, builder))

	recs, _ := engine.Recommend(context.Background(), "lector", 5)
	for _, r := range recs {
		fmt.Printf("%-15s %.2f  %s\n", r.Book.Title, r.Score, r.Reason)
	}
	// Output:
	// Harry Potter 2  1.00  liked by 1 reader with similar taste · by J.K. Rowling, an author you rate highly
	// 1984            0.48  liked by 1 reader with similar taste
}
