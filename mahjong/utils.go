package mahjong

// RemoveElements 从切片中移除最多count个等于value的元素
func RemoveElements[T comparable](s []T, value T, count int) []T {
	result := make([]T, 0, len(s))
	removed := 0
	for _, v := range s {
		if v == value && removed < count {
			removed++
			continue
		}
		result = append(result, v)
	}
	return result
}

// CountElement 统计切片中等于value的元素个数
func CountElement[T comparable](s []T, value T) int {
	count := 0
	for _, v := range s {
		if v == value {
			count++
		}
	}
	return count
}
