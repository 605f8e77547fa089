// Copyright 2017-25 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package search implements the pbf search subcommand: point lookups
// against the sparse index, full scans by tag, and parallel filters for
// node pairs shared by a way.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/maguro/osmpbf"
	"github.com/maguro/osmpbf/cmd/pbf/cli"
)

var out io.Writer = os.Stdout

func init() {
	cli.RootCmd.AddCommand(searchCmd)

	flags := searchCmd.Flags()
	flags.String("eltype", "", "element type to search for: node, way, or relation")
	flags.Int64("elid", 0, "element id to search for")
	flags.String("tagkey", "", "tag key to search for")
	flags.String("tagvalue", "", "tag value to search for")
	flags.Int64Slice("pair", nil, "pair of node ids a way must reference")
	flags.StringP("file", "f", "", "path to the OSM PBF file to search (required)")
	flags.BoolP("exact", "e", true, "match only the element itself; when false also resolve its dependencies")
	flags.Uint16P("cpu", "c", uint16(runtime.GOMAXPROCS(-1)), "number of CPUs to use for a parallel scan")

	if err := searchCmd.MarkFlagRequired("file"); err != nil {
		log.Fatal(err)
	}
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search an OSM file for an element, a tag, or a node pair",
	Long:  "Search an OSM file by element id, by tag key/value, or for ways referencing a pair of nodes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		flags := cmd.Flags()

		file, err := flags.GetString("file")
		if err != nil {
			log.Fatal(err)
		}

		eltype, err := flags.GetString("eltype")
		if err != nil {
			log.Fatal(err)
		}

		elid, err := flags.GetInt64("elid")
		if err != nil {
			log.Fatal(err)
		}

		tagkey, err := flags.GetString("tagkey")
		if err != nil {
			log.Fatal(err)
		}

		tagvalue, err := flags.GetString("tagvalue")
		if err != nil {
			log.Fatal(err)
		}

		pair, err := flags.GetInt64Slice("pair")
		if err != nil {
			log.Fatal(err)
		}

		exact, err := flags.GetBool("exact")
		if err != nil {
			log.Fatal(err)
		}

		ncpu, err := flags.GetUint16("cpu")
		if err != nil {
			log.Fatal(err)
		}

		results, err := run(file, eltype, elid, tagkey, tagvalue, pair, exact, int(ncpu))
		if err != nil {
			log.Fatal(err)
		}

		render(results)
	},
}

func run(file, eltype string, elid int64, tagkey, tagvalue string, pair []int64, exact bool, ncpu int) ([]pbf.Entity, error) {
	switch {
	case eltype != "" && elid != 0:
		return searchByID(file, eltype, pbf.ID(elid), exact)
	case tagkey != "" || tagvalue != "":
		return searchByTag(file, tagkey, tagvalue, ncpu)
	case len(pair) > 0:
		if len(pair) < 2 {
			return nil, fmt.Errorf("at least two node ids are required for --pair")
		}

		return searchByPair(file, pair[0], pair[1], ncpu)
	default:
		return nil, fmt.Errorf("one of --eltype/--elid, --tagkey/--tagvalue, or --pair is required")
	}
}

func parseElementType(eltype string) (pbf.EntityType, error) {
	switch eltype {
	case "node":
		return pbf.NODE, nil
	case "way":
		return pbf.WAY, nil
	case "relation":
		return pbf.RELATION, nil
	default:
		return 0, fmt.Errorf("unknown element type %q", eltype)
	}
}

func searchByID(file, eltype string, id pbf.ID, exact bool) ([]pbf.Entity, error) {
	kind, err := parseElementType(eltype)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()

	reader, err := pbf.OpenIndexedReader(ctx, file)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	if exact {
		found, err := reader.Find(kind, id)
		if err != nil || found == nil {
			return nil, err
		}

		return []pbf.Entity{found}, nil
	}

	return reader.GetWithDeps(kind, id)
}

func searchByTag(file, tagkey, tagvalue string, ncpu int) ([]pbf.Entity, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return pbf.ParFind(context.Background(), f, nil, func(e pbf.Entity) bool {
		tags := e.GetTags()
		if tagkey != "" {
			for _, tag := range tags {
				if tag.Key == tagkey {
					return tagvalue == "" || tag.Value == tagvalue
				}
			}

			return false
		} else if tagvalue != "" {
			for _, tag := range tags {
				if tag.Value == tagvalue {
					return true
				}
			}

			return false
		}

		return true
	}, ncpu)
}

func searchByPair(file string, first, second int64, ncpu int) ([]pbf.Entity, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	way := pbf.WAY

	return pbf.ParFind(context.Background(), f, &way, func(e pbf.Entity) bool {
		w, ok := e.(*pbf.Way)
		if !ok {
			return false
		}

		var hasFirst, hasSecond bool

		for _, ref := range w.NodeIDs {
			if ref == pbf.ID(first) {
				hasFirst = true
			}

			if ref == pbf.ID(second) {
				hasSecond = true
			}
		}

		return hasFirst && hasSecond
	}, ncpu)
}

func render(results []pbf.Entity) {
	b, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprintln(out, string(b))
	fmt.Fprintf(out, "%s elements found\n", humanize.Comma(int64(len(results))))
}
