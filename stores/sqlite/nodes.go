// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mdhender/trash"
)

// ResultSet is a row of the result_sets table.
type ResultSet struct {
	ID       int64
	Seq      int
	FileName string
	Lexer    string
	Parser   string
}

// NodeRow is a row of the nodes table. Rows of a result set are stored
// in pre-order, so ordering by ID gives document order.
type NodeRow struct {
	ID       int64
	ParentID int64 // 0 for root nodes
	Seq      int   // index among the parent's children
	Depth    int
	Kind     string
	Name     string
	Value    string
	Line     int // leftmost-descent position, elements only
	Column   int
}

// SaveResultSets stores the result sets and every node of their trees in
// a single transaction. It returns the ids of the result set rows.
func (s *SQLiteStore) SaveResultSets(ctx context.Context, sets []*trash.ParsingResultSet) ([]int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	nodeStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO nodes (result_set_id, parent_id, seq, depth, kind, name, value, line, col)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare nodes: %w", err)
	}
	defer nodeStmt.Close()

	var ids []int64
	for seq, set := range sets {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO result_sets (seq, file_name, lexer, parser)
			VALUES (?, ?, ?, ?)
		`, seq, set.FileName, set.Lexer, set.Parser)
		if err != nil {
			return nil, fmt.Errorf("insert result_set: %w", err)
		}
		setID, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("get result_set id: %w", err)
		}
		for i, root := range set.Nodes {
			if err := insertTree(ctx, nodeStmt, setID, i, root); err != nil {
				return nil, err
			}
		}
		ids = append(ids, setID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return ids, nil
}

// insertTree writes a tree in pre-order using an explicit stack.
func insertTree(ctx context.Context, stmt *sql.Stmt, setID int64, rootSeq int, root trash.Node) error {
	type pending struct {
		node     trash.Node
		parentID sql.NullInt64
		seq      int
		depth    int
	}
	stack := []pending{{node: root, seq: rootSeq}}
	for len(stack) != 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var name, value string
		var line, col int
		switch n := p.node.(type) {
		case *trash.Element:
			name = n.Name
			line, col = trash.Position(n)
		case *trash.Text:
			value = n.Value
		case *trash.Attr:
			name, value = n.Name, n.Value
		}
		result, err := stmt.ExecContext(ctx, setID, p.parentID, p.seq, p.depth, p.node.Kind(), name, value, line, col)
		if err != nil {
			return fmt.Errorf("insert node: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get node id: %w", err)
		}

		if e, ok := p.node.(*trash.Element); ok {
			parent := sql.NullInt64{Int64: id, Valid: true}
			for i := len(e.Children) - 1; i >= 0; i-- {
				stack = append(stack, pending{node: e.Children[i], parentID: parent, seq: i, depth: p.depth + 1})
			}
		}
	}
	return nil
}

// ResultSets returns the stored result sets in input order.
func (s *SQLiteStore) ResultSets(ctx context.Context) ([]ResultSet, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, seq, file_name, lexer, parser FROM result_sets ORDER BY seq, id`)
	if err != nil {
		return nil, fmt.Errorf("query result_sets: %w", err)
	}
	defer rows.Close()

	var sets []ResultSet
	for rows.Next() {
		var rs ResultSet
		if err := rows.Scan(&rs.ID, &rs.Seq, &rs.FileName, &rs.Lexer, &rs.Parser); err != nil {
			return nil, err
		}
		sets = append(sets, rs)
	}
	return sets, rows.Err()
}

// Nodes returns the nodes of a result set in document order.
func (s *SQLiteStore) Nodes(ctx context.Context, setID int64) ([]NodeRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, COALESCE(parent_id, 0), seq, depth, kind, name, value, line, col
		FROM nodes
		WHERE result_set_id = ?
		ORDER BY id
	`, setID)
	if err != nil {
		return nil, fmt.Errorf("query nodes: %w", err)
	}
	defer rows.Close()

	var nodes []NodeRow
	for rows.Next() {
		var n NodeRow
		if err := rows.Scan(&n.ID, &n.ParentID, &n.Seq, &n.Depth, &n.Kind, &n.Name, &n.Value, &n.Line, &n.Column); err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, rows.Err()
}
