// Command ssdeep computes and matches ssdeep fuzzy hashes from the command
// line. It is a thin operator tool over the ssdeep package; none of the
// hashing or comparison logic lives here.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cosmorse/ssdeep"
	"github.com/spf13/cobra"
)

var silent bool

var rootCmd = &cobra.Command{
	Use:   "ssdeep",
	Short: "ssdeep fuzzy hashing tool",
	Long:  "ssdeep computes and matches fuzzy hashes (context-triggered piecewise hashing).",
}

var hashCmd = &cobra.Command{
	Use:   "hash <files|dirs>...",
	Short: "hash files or directories and print their signatures",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, arg := range args {
			walkPaths(arg, hashAndPrint)
		}
	},
}

var (
	matchFile string
	threshold int
)

var matchCmd = &cobra.Command{
	Use:   "match <files|dirs>...",
	Short: "hash files or directories and report matches against a known-signature list",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hashes, err := loadHashes(matchFile)
		if err != nil {
			if !silent {
				fmt.Fprintf(os.Stderr, "ssdeep: %v\n", err)
			}
			os.Exit(1)
		}
		for _, arg := range args {
			walkPaths(arg, func(p string) { matchFileAgainstHashes(p, hashes) })
		}
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <hash1> <hash2>",
	Short: "compare two signature strings directly, without hashing files",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		score := ssdeep.Compare(args[0], args[1])
		fmt.Println(score)
		if score < 0 {
			os.Exit(1)
		}
	},
}

type hashInfo struct {
	hash string
	path string
}

func loadHashes(path string) ([]hashInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var hashes []hashInfo
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.SplitN(line, ",", 2)
		if len(parts) == 2 {
			hash := parts[0]
			targetPath := strings.Trim(parts[1], "\"")
			hashes = append(hashes, hashInfo{hash: hash, path: targetPath})
		}
	}
	return hashes, scanner.Err()
}

// walkPaths calls fn once for path if it's a regular file, or once per file
// beneath it if it's a directory. Shared between hash and match so neither
// subcommand needs its own directory-walking copy.
func walkPaths(path string, fn func(path string)) {
	info, err := os.Stat(path)
	if err != nil {
		if !silent {
			fmt.Fprintf(os.Stderr, "ssdeep: %s: %v\n", path, err)
		}
		return
	}

	if !info.IsDir() {
		fn(path)
		return
	}

	filepath.Walk(path, func(p string, i os.FileInfo, e error) error {
		if e != nil {
			if !silent {
				fmt.Fprintf(os.Stderr, "ssdeep: %s: %v\n", p, e)
			}
			return nil
		}
		if !i.IsDir() {
			fn(p)
		}
		return nil
	})
}

func matchFileAgainstHashes(path string, hashes []hashInfo) {
	hash, err := ssdeep.File(path)
	if err != nil {
		if !silent {
			fmt.Fprintf(os.Stderr, "ssdeep: %s: %v\n", path, err)
		}
		return
	}

	for _, h := range hashes {
		score := ssdeep.Compare(hash, h.hash)
		if score >= threshold && score > 0 {
			fmt.Printf("%s matches %s (%d)\n", path, h.path, score)
		}
	}
}

func hashAndPrint(path string) {
	hash, err := ssdeep.File(path)
	if err != nil {
		if !silent {
			fmt.Fprintf(os.Stderr, "ssdeep: %s: %v\n", path, err)
		}
		return
	}
	fmt.Printf("%s,\"%s\"\n", hash, path)
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&silent, "silent", "s", false, "silent mode - suppresses error messages")

	matchCmd.Flags().StringVarP(&matchFile, "match", "m", "", "file of known hashes to match against, one \"hash,\\\"path\\\"\" line each")
	matchCmd.MarkFlagRequired("match")
	matchCmd.Flags().IntVarP(&threshold, "threshold", "t", 1, "minimum score to report a match")

	rootCmd.AddCommand(hashCmd, matchCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
