// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bookgraph/dataset"
	"github.com/katalvlaran/bookgraph/library"
)

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "bookgraph",
		Short:         "Reader affinity graph and book recommendations for a library dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.configPath == "" {
				a.configPath = configPathFromEnv()
			}
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.teardown()
		},
	}
	root.PersistentFlags().StringVarP(&a.dataPath, "data", "d", "", "dataset file (YAML or JSON)")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration file (YAML)")
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print JSON instead of text")

	root.AddCommand(
		newLoadCmd(a),
		newGraphCmd(a),
		newPathCmd(a),
		newClustersCmd(a),
		newFriendsCmd(a),
		newTopCmd(a),
		newRecommendCmd(a),
		newGenerateCmd(),
	)
	return root
}

// emit prints v as indented JSON when --json is set, otherwise runs text.
func (a *app) emit(w io.Writer, v any, text func(io.Writer)) error {
	if !a.asJSON {
		text(w)
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func usernames(rs []*library.Reader) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Username
	}
	return out
}

type issueView struct {
	Batch string `json:"batch"`
	Row   int    `json:"row"`
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

type batchView struct {
	Batch     string `json:"batch"`
	Processed int    `json:"processed"`
	Skipped   int    `json:"skipped"`
}

type loadView struct {
	Batches []batchView `json:"batches"`
	Issues  []issueView `json:"issues"`
}

func issueViews(issues []library.Issue) []issueView {
	out := make([]issueView, len(issues))
	for i, is := range issues {
		out[i] = issueView{Batch: is.Batch, Row: is.Row, Kind: string(is.Kind), Error: is.Err.Error()}
	}
	return out
}

func newLoadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Ingest the dataset and report processed and skipped records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := loadView{Issues: issueViews(a.ingest.Total().Issues)}
			for _, r := range a.ingest.Reports {
				v.Batches = append(v.Batches, batchView{r.Batch, r.Processed, r.Skipped})
			}
			return a.emit(cmd.OutOrStdout(), v, func(w io.Writer) {
				for _, b := range v.Batches {
					fmt.Fprintf(w, "%-12s processed %d, skipped %d\n", b.Batch, b.Processed, b.Skipped)
				}
				for _, is := range v.Issues {
					fmt.Fprintf(w, "  %s row %d: %s: %s\n", is.Batch, is.Row, is.Kind, is.Error)
				}
			})
		},
	}
}

type graphView struct {
	Readers              int                 `json:"readers"`
	Edges                int                 `json:"edges"`
	SimilarityEdges      int                 `json:"similarity_edges"`
	ConnectionEdges      int                 `json:"connection_edges"`
	SkippedConnections   int                 `json:"skipped_connections"`
	RedundantConnections int                 `json:"redundant_connections"`
	Adjacency            map[string][]string `json:"adjacency"`
	Issues               []issueView         `json:"issues"`
}

func newGraphCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the affinity graph as adjacency lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := a.network.Graph()
			rep := a.network.LastReport()
			v := graphView{
				Readers:              g.VertexCount(),
				Edges:                g.EdgeCount(),
				SimilarityEdges:      rep.SimilarityEdges,
				ConnectionEdges:      rep.ConnectionEdges,
				SkippedConnections:   rep.SkippedConnections,
				RedundantConnections: rep.RedundantConnections,
				Adjacency:            make(map[string][]string, g.VertexCount()),
				Issues:               issueViews(rep.Issues),
			}
			vertices := g.Vertices()
			for _, r := range vertices {
				v.Adjacency[r.Username] = usernames(g.Neighbors(r))
			}
			return a.emit(cmd.OutOrStdout(), v, func(w io.Writer) {
				fmt.Fprintf(w, "%d readers, %d edges (%d similarity, %d connection, %d skipped)\n",
					v.Readers, v.Edges, v.SimilarityEdges, v.ConnectionEdges, v.SkippedConnections)
				for _, r := range vertices {
					fmt.Fprintf(w, "%s: %s\n", r.Username, strings.Join(v.Adjacency[r.Username], " "))
				}
			})
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Print the shortest chain of readers between two usernames",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := usernames(a.network.ShortestPath(args[0], args[1]))
			return a.emit(cmd.OutOrStdout(), map[string][]string{"path": path}, func(w io.Writer) {
				if len(path) == 0 {
					fmt.Fprintf(w, "no path from %s to %s\n", args[0], args[1])
					return
				}
				fmt.Fprintln(w, strings.Join(path, " -> "))
			})
		},
	}
}

func newClustersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clusters",
		Short: "Print the connected components of the affinity graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			comps := a.network.ConnectedComponents()
			out := make([][]string, len(comps))
			for i, c := range comps {
				out[i] = usernames(c)
			}
			return a.emit(cmd.OutOrStdout(), map[string][][]string{"clusters": out}, func(w io.Writer) {
				for i, c := range out {
					fmt.Fprintf(w, "%d: %s\n", i+1, strings.Join(c, " "))
				}
			})
		},
	}
}

type suggestionView struct {
	Username string `json:"username"`
	Mutual   int    `json:"mutual"`
}

func newFriendsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "friends <username>",
		Short: "Suggest readers two hops away, ranked by friends in common",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := a.network.Catalog().Reader(args[0]); !ok {
				return fmt.Errorf("%w: %q", library.ErrReaderNotFound, args[0])
			}
			ss := a.network.SuggestedFriendsWithCounts(args[0])
			out := make([]suggestionView, len(ss))
			for i, s := range ss {
				out[i] = suggestionView{s.Reader.Username, s.Mutual}
			}
			return a.emit(cmd.OutOrStdout(), out, func(w io.Writer) {
				for _, s := range out {
					fmt.Fprintf(w, "%s (%d mutual)\n", s.Username, s.Mutual)
				}
			})
		},
	}
}

type degreeView struct {
	Username string `json:"username"`
	Degree   int    `json:"degree"`
}

func newTopCmd(a *app) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "top",
		Short: "List the most connected readers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := a.network.Graph()
			top := a.network.MostConnected(n)
			out := make([]degreeView, len(top))
			for i, r := range top {
				out[i] = degreeView{r.Username, g.Degree(r)}
			}
			return a.emit(cmd.OutOrStdout(), out, func(w io.Writer) {
				for _, d := range out {
					fmt.Fprintf(w, "%-16s %d\n", d.Username, d.Degree)
				}
			})
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 5, "number of readers")
	return cmd
}

type recommendationView struct {
	BookID  string   `json:"book_id"`
	Title   string   `json:"title"`
	Author  string   `json:"author"`
	Score   float64  `json:"score"`
	Reason  string   `json:"reason"`
	Sources []string `json:"sources"`
}

func newRecommendCmd(a *app) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "recommend <username>",
		Short: "Recommend books for a reader",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if _, ok := a.network.Catalog().Reader(args[0]); !ok {
				return fmt.Errorf("%w: %q", library.ErrReaderNotFound, args[0])
			}
			if n == 0 {
				n = a.cfg.Recommend.DefaultCount
			}
			recs, err := a.engine.Recommend(ctx, args[0], n)
			if err != nil {
				return err
			}
			out := make([]recommendationView, len(recs))
			for i, r := range recs {
				out[i] = recommendationView{r.Book.ID, r.Book.Title, r.Book.Author, r.Score, r.Reason, r.Sources}
			}
			return a.emit(cmd.OutOrStdout(), out, func(w io.Writer) {
				if len(out) == 0 {
					fmt.Fprintln(w, "no recommendations")
					return
				}
				for _, r := range out {
					fmt.Fprintf(w, "%.2f  %s (%s): %s\n", r.Score, r.Title, r.Author, r.Reason)
				}
			})
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 0, "maximum recommendations (0 uses the configured default)")
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var (
		seed                                   int64
		readers, books, groups, ratings, conns int
		loyalty                                float64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic dataset as YAML to stdout",
		Args:  cobra.NoArgs,
		// no dataset or config to load
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			if readers < 1 || books < 1 || groups < 1 || ratings < 0 || conns < 0 || loyalty < 0 || loyalty > 1 {
				return fmt.Errorf("generate: flag out of range")
			}
			d := dataset.Generate(
				dataset.WithSeed(seed),
				dataset.WithReaders(readers),
				dataset.WithBooks(books),
				dataset.WithGroups(groups),
				dataset.WithRatingsPerReader(ratings),
				dataset.WithConnections(conns),
				dataset.WithLoyalty(loyalty),
			)
			return d.Encode(cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.IntVar(&readers, "readers", dataset.DefaultGenReaders, "number of readers")
	f.IntVar(&books, "books", dataset.DefaultGenBooks, "number of books")
	f.IntVar(&groups, "groups", dataset.DefaultGenGroups, "number of taste groups")
	f.IntVar(&ratings, "ratings", dataset.DefaultGenRatingsPerReader, "ratings per reader")
	f.IntVar(&conns, "connections", dataset.DefaultGenConnections, "explicit connections")
	f.Float64Var(&loyalty, "loyalty", dataset.DefaultGenLoyalty, "probability a rating stays in the reader's group")
	return cmd
}
