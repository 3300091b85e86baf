package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gomoku/internal/board"
)

func main() {
	run(os.Stdin, os.Stdout, board.NewDefault())
}

// run drives a hot-seat game on b from text commands until EOF or "quit".
func run(in io.Reader, out io.Writer, b *board.Board) {
	turn := board.Black
	reader := bufio.NewScanner(in)

	printBoard(out, b)
	for {
		fmt.Fprintf(out, "%s to move (row col | find ROWS | rotate | clear | quit)\n> ", turn)
		if !reader.Scan() {
			return
		}
		parts := strings.Fields(reader.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "quit":
			return
		case "clear":
			b.Clear()
			turn = board.Black
		case "rotate":
			b.Rotate()
		case "find":
			if len(parts) != 2 {
				fmt.Fprintln(out, "usage: find B?B/.W.")
				continue
			}
			pattern, err := board.Parse(strings.Split(parts[1], "/")...)
			if err != nil {
				fmt.Fprintln(out, "Invalid pattern:", err)
				continue
			}
			match, ok := b.Exist(pattern)
			if !ok {
				fmt.Fprintln(out, "Not found.")
				continue
			}
			fmt.Fprintf(out, "Found:\n%s\n", match)
			continue
		default:
			if len(parts) != 2 {
				fmt.Fprintln(out, "Bad input, try again.")
				continue
			}
			r, err1 := strconv.Atoi(parts[0])
			c, err2 := strconv.Atoi(parts[1])
			cell := board.Cell{Row: r, Col: c}
			if err1 != nil || err2 != nil || !b.InBounds(cell) {
				fmt.Fprintln(out, "Off the board.")
				continue
			}
			if b.At(r, c) != board.Empty {
				fmt.Fprintln(out, "Cell taken.")
				continue
			}
			b.Move(cell, turn)
			turn = turn.Opponent()
		}
		printBoard(out, b)
	}
}

func printBoard(out io.Writer, b *board.Board) {
	fmt.Fprint(out, "   ")
	for c := 0; c < b.Cols(); c++ {
		fmt.Fprintf(out, "%2d", c%100)
	}
	fmt.Fprintln(out)
	for r := 0; r < b.Rows(); r++ {
		fmt.Fprintf(out, "%2d ", r)
		for _, s := range b.Row(r) {
			fmt.Fprintf(out, " %s", s)
		}
		fmt.Fprintln(out)
	}
}
