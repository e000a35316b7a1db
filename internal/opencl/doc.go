// Package opencl owns the OpenCL objects the CLBlast bindings borrow: the
// context and in-order command queue of one device, typed device buffers and
// event completion. Real support requires building with '-tags opencl'.
package opencl
