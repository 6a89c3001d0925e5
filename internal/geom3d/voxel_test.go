package geom3d

import "testing"

func TestVoxelDownsampleMergesSameCell(t *testing.T) {
	pts := []Point3D{
		{X: 0, Y: 0, Z: 0},
		{X: 0.1, Y: 0.1, Z: 0},
		{X: 5, Y: 5, Z: 0},
	}
	out := VoxelDownsample(pts, 1)
	if len(out) != 2 {
		t.Fatalf("expected two voxels, got %d: %+v", len(out), out)
	}
}

func TestVoxelDownsampleZeroLeafIsIdentity(t *testing.T) {
	pts := []Point3D{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}}
	out := VoxelDownsample(pts, 0)
	if len(out) != len(pts) {
		t.Fatalf("expected leaf<=0 to leave every point, got %d of %d", len(out), len(pts))
	}
}

func TestVoxelDownsampleCentroid(t *testing.T) {
	pts := []Point3D{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}}
	out := VoxelDownsample(pts, 10)
	if len(out) != 1 {
		t.Fatalf("expected a single merged voxel, got %d", len(out))
	}
	if out[0].X != 1 {
		t.Fatalf("expected centroid X=1, got %g", out[0].X)
	}
}
