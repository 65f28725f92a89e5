package mesh

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/olekukonko/tablewriter"
)

// Build a tabular representation of object statistics.
func Stats(objects []*Object3d) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Object", "Format", "Vertices", "Indices", "Triangles", "BBox", "Size"})

	var totalVerts, totalIndices, totalTris, totalBytes int
	for _, obj := range objects {
		bbox := obj.BBox()
		objBytes := bufferSize(obj)
		table.Append([]string{
			obj.Name,
			obj.Format.String(),
			fmt.Sprintf("%d", len(obj.Vertices)),
			fmt.Sprintf("%d", len(obj.Indices)),
			fmt.Sprintf("%d", obj.Triangles()),
			fmt.Sprintf("%v - %v", bbox[0], bbox[1]),
			fmtSize(objBytes),
		})

		totalVerts += len(obj.Vertices)
		totalIndices += len(obj.Indices)
		totalTris += obj.Triangles()
		totalBytes += objBytes
	}

	table.SetFooter([]string{
		"Total",
		" ",
		fmt.Sprintf("%d", totalVerts),
		fmt.Sprintf("%d", totalIndices),
		fmt.Sprintf("%d", totalTris),
		" ",
		fmtSize(totalBytes),
	})
	table.Render()
	return buf.String()
}

// Estimate the space needed for an object's GPU buffers assuming float32
// attributes and uint32 indices.
func bufferSize(obj *Object3d) int {
	const f32 = int(unsafe.Sizeof(float32(0)))

	stride := 3 * f32
	if obj.Format.HasNormal() {
		stride += 3 * f32
	}
	if obj.Format.HasTexCoord() {
		stride += 2 * f32
	}
	return stride*len(obj.Vertices) + int(unsafe.Sizeof(uint32(0)))*len(obj.Indices)
}

// Format a byte count with the appropriate byte/kb/mb unit.
func fmtSize(totalBytes int) string {
	if totalBytes < 1e3 {
		return fmt.Sprintf("%3d bytes", totalBytes)
	} else if totalBytes < 1e6 {
		return fmt.Sprintf("%3.1f kb", float32(totalBytes)/1e3)
	}
	return fmt.Sprintf("%3.1f mb", float32(totalBytes)/1e6)
}
