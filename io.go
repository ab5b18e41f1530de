package trimesh

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"

	"github.com/flywave/go3d/vec3"
)

func toLittleByteOrder(v interface{}) []byte {
	var buf []byte
	b := bytes.NewBuffer(buf)
	e := binary.Write(b, binary.LittleEndian, v)
	if e != nil {
		return nil
	}
	return b.Bytes()
}

func writeLittleByte(wt io.Writer, v interface{}) {
	buf := toLittleByteOrder(v)
	if buf != nil {
		wt.Write(buf)
	}
}

func readLittleByte(rd io.Reader, v interface{}) error {
	return binary.Read(rd, binary.LittleEndian, v)
}

func TriMeshMarshal(wt io.Writer, m *TriMesh) {
	wt.Write([]byte(TRIMESH_SIGNATURE))
	writeLittleByte(wt, V1)
	writeLittleByte(wt, uint8(m.IndexWidth))

	writeLittleByte(wt, uint32(len(m.Vertices)))
	writeLittleByte(wt, m.Vertices)

	writeLittleByte(wt, uint32(len(m.Normals)))
	writeLittleByte(wt, m.Normals)

	writeLittleByte(wt, uint32(len(m.Faces)))
	if m.IndexWidth == INDEX_WIDTH_16 {
		writeLittleByte(wt, m.Indices16())
	} else {
		writeLittleByte(wt, m.Indices32())
	}
}

func TriMeshUnMarshal(rd io.Reader) (*TriMesh, error) {
	sig := make([]byte, 4)
	if _, err := io.ReadFull(rd, sig); err != nil {
		return nil, err
	}
	if string(sig) != TRIMESH_SIGNATURE {
		return nil, errors.New("invalid trimesh signature")
	}
	var version uint32
	if err := readLittleByte(rd, &version); err != nil {
		return nil, err
	}
	if version != V1 {
		return nil, errors.New("unsupported trimesh version")
	}

	m := &TriMesh{}
	var width uint8
	if err := readLittleByte(rd, &width); err != nil {
		return nil, err
	}
	m.IndexWidth = int(width)
	if m.IndexWidth != INDEX_WIDTH_16 && m.IndexWidth != INDEX_WIDTH_32 {
		return nil, errors.New("unsupported index width")
	}

	var vertCount uint32
	if err := readLittleByte(rd, &vertCount); err != nil {
		return nil, err
	}
	m.Vertices = make([]vec3.T, vertCount)
	if err := readLittleByte(rd, m.Vertices); err != nil {
		return nil, err
	}

	var nlCount uint32
	if err := readLittleByte(rd, &nlCount); err != nil {
		return nil, err
	}
	if nlCount > 0 {
		m.Normals = make([]vec3.T, nlCount)
		if err := readLittleByte(rd, m.Normals); err != nil {
			return nil, err
		}
	}

	var faceCount uint32
	if err := readLittleByte(rd, &faceCount); err != nil {
		return nil, err
	}
	m.Faces = make([]Triangle, faceCount)
	if m.IndexWidth == INDEX_WIDTH_16 {
		idx := make([]uint16, faceCount*3)
		if err := readLittleByte(rd, idx); err != nil {
			return nil, err
		}
		for i := range m.Faces {
			m.Faces[i] = Triangle{uint32(idx[i*3]), uint32(idx[i*3+1]), uint32(idx[i*3+2])}
		}
	} else {
		idx := make([]uint32, faceCount*3)
		if err := readLittleByte(rd, idx); err != nil {
			return nil, err
		}
		for i := range m.Faces {
			m.Faces[i] = Triangle{idx[i*3], idx[i*3+1], idx[i*3+2]}
		}
	}
	for i := range m.Faces {
		f := &m.Faces[i]
		if int(f[0]) >= len(m.Vertices) || int(f[1]) >= len(m.Vertices) || int(f[2]) >= len(m.Vertices) {
			return nil, errors.New("face index out of vertex range")
		}
	}
	return m, nil
}

func TriMeshWriteTo(path string, m *TriMesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	TriMeshMarshal(f, m)
	return nil
}

func TriMeshReadFrom(path string) (*TriMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return TriMeshUnMarshal(f)
}
