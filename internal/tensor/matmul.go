package tensor

import "fmt"

// BatchMatMul performs batched matrix multiplication for 3D tensors:
// [B, M, K] @ [B, K, N] -> [B, M, N].
//
// Transform composition uses this with [N, 3, 3] homogeneous matrices.
func BatchMatMul[T Float](a, b *Tensor[T]) *Tensor[T] {
	if a.Rank() != 3 || b.Rank() != 3 {
		panic(fmt.Sprintf("tensor: BatchMatMul requires rank-3 tensors, got %v and %v", a.shape, b.shape))
	}
	if a.shape[0] != b.shape[0] {
		panic(fmt.Sprintf("tensor: BatchMatMul batch sizes differ: %d vs %d", a.shape[0], b.shape[0]))
	}
	if a.shape[2] != b.shape[1] {
		panic(fmt.Sprintf("tensor: BatchMatMul inner dimensions differ: %v @ %v", a.shape, b.shape))
	}

	batch, m, k := a.shape[0], a.shape[1], a.shape[2]
	n := b.shape[2]
	out := New[T](Shape{batch, m, n})

	for bi := 0; bi < batch; bi++ {
		aOff := bi * m * k
		bOff := bi * k * n
		oOff := bi * m * n
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				var sum T
				for l := 0; l < k; l++ {
					sum += a.data[aOff+i*k+l] * b.data[bOff+l*n+j]
				}
				out.data[oOff+i*n+j] = sum
			}
		}
	}
	return out
}
