package shape

import (
	"sort"

	rowsdomain "github.com/orbicity/hotel-ops-api/infrastructure/integrator/rows/domain"
)

// Strategy reconhece um formato de resposta do endpoint de valores e o
// converte em linhas. Devolve nil quando o payload não tem o formato esperado.
type Strategy struct {
	Name    string
	Extract func(payload rowsdomain.Payload) []Record
}

// Strategies é a cadeia padrão, em ordem de prioridade
var Strategies = []Strategy{
	{Name: "row_objects", Extract: rowObjects},
	{Name: "value_grid", Extract: valueGrid},
	{Name: "cell_list", Extract: cellList},
}

// rowObjects lê {"rows": [{"Followers": "500"}]} ou o mesmo em "items"
func rowObjects(payload rowsdomain.Payload) []Record {
	for _, key := range []string{"rows", "items"} {
		list, ok := payload[key].([]interface{})
		if !ok || len(list) == 0 {
			continue
		}

		out := make([]Record, 0, len(list))
		for _, item := range list {
			obj, ok := item.(map[string]interface{})
			if !ok {
				out = nil
				break
			}
			out = append(out, toRecord(obj))
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// valueGrid lê {"values": [[cabeçalho...], [valor...]]} ou o mesmo em "items".
// Cada linha de dados é combinada com o cabeçalho da primeira linha.
func valueGrid(payload rowsdomain.Payload) []Record {
	for _, key := range []string{"values", "items"} {
		grid, ok := payload[key].([]interface{})
		if !ok || len(grid) < 2 {
			continue
		}

		header, ok := grid[0].([]interface{})
		if !ok || len(header) == 0 {
			continue
		}

		names := make([]string, len(header))
		for i, h := range header {
			names[i] = NormalizeKey(toText(h))
		}

		out := make([]Record, 0, len(grid)-1)
		for _, line := range grid[1:] {
			cells, ok := line.([]interface{})
			if !ok {
				continue
			}
			rec := make(Record, len(names))
			for i, name := range names {
				if name == "" || i >= len(cells) {
					continue
				}
				if _, dup := rec[name]; dup {
					continue
				}
				rec[name] = unwrapCell(cells[i])
			}
			out = append(out, rec)
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// cellList lê {"cells": [{"key": "Followers", "value": 500, "row": 0}]}.
// Células sem "row" pertencem à primeira linha.
func cellList(payload rowsdomain.Payload) []Record {
	cells, ok := payload["cells"].([]interface{})
	if !ok || len(cells) == 0 {
		return nil
	}

	var (
		order []int
		rows  = make(map[int]Record)
	)

	for _, c := range cells {
		cell, ok := c.(map[string]interface{})
		if !ok {
			continue
		}

		key := NormalizeKey(toText(cell["key"]))
		if key == "" {
			continue
		}

		idx := 0
		if r, ok := ToFloat(cell["row"]); ok {
			idx = int(r)
		}

		rec, seen := rows[idx]
		if !seen {
			rec = make(Record)
			rows[idx] = rec
			order = append(order, idx)
		}
		if _, dup := rec[key]; !dup {
			rec[key] = cell["value"]
		}
	}

	if len(order) == 0 {
		return nil
	}

	out := make([]Record, 0, len(order))
	for _, idx := range order {
		out = append(out, rows[idx])
	}
	return out
}

func toRecord(obj map[string]interface{}) Record {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rec := make(Record, len(obj))
	for _, k := range keys {
		name := NormalizeKey(k)
		if name == "" {
			continue
		}
		if _, dup := rec[name]; dup {
			continue
		}
		rec[name] = obj[k]
	}
	return rec
}
